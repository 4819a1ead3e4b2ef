// Command replkit drives a SQL REPL from the command line: one-shot
// statements with exec, or a whole file of statements with script.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	replkit "github.com/wagiedev/replkit-go"
)

func main() {
	app := &cli.App{
		Name:  "replkit",
		Usage: "drive an interactive SQL REPL over its standard streams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "target",
				Usage: "Path to the REPL binary. Defaults to $REPLKIT_TARGET, then sqlite3 in PATH.",
			},
			&cli.StringSliceFlag{
				Name:  "flag",
				Usage: "Flag passed to the REPL binary. May be repeated.",
			},
			&cli.StringSliceFlag{
				Name:  "init",
				Usage: "Command written to the REPL at startup. May be repeated.",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging.",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "exec",
				Usage:     "execute one statement and print its framed result",
				ArgsUsage: "<statement>",
				Action:    execAction,
			},
			{
				Name:      "script",
				Usage:     "execute each statement of a file and print the framed results",
				ArgsUsage: "<file>",
				Action:    scriptAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func shellOptions(cliCtx *cli.Context) []replkit.Option {
	var opts []replkit.Option

	if target := cliCtx.String("target"); target != "" {
		opts = append(opts, replkit.WithExecPath(target))
	}

	if flags := cliCtx.StringSlice("flag"); len(flags) > 0 {
		opts = append(opts, replkit.WithFlags(flags...))
	}

	if init := cliCtx.StringSlice("init"); len(init) > 0 {
		opts = append(opts, replkit.WithInitCommands(init...))
	}

	if cliCtx.Bool("verbose") {
		opts = append(opts, replkit.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	return opts
}

func execAction(cliCtx *cli.Context) error {
	statement := cliCtx.Args().First()
	if statement == "" {
		return fmt.Errorf("exec requires a statement argument")
	}

	out, err := replkit.Run(context.Background(), statement, shellOptions(cliCtx)...)
	if err != nil {
		return err
	}

	if out != "" {
		fmt.Println(out)
	}

	return nil
}

func scriptAction(cliCtx *cli.Context) error {
	path := cliCtx.Args().First()
	if path == "" {
		return fmt.Errorf("script requires a file argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx := context.Background()

	shell := replkit.NewShell()
	if err := shell.Start(ctx, shellOptions(cliCtx)...); err != nil {
		return err
	}
	defer shell.Quit(ctx)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		out, err := shell.Execute(ctx, line)
		if err != nil {
			return fmt.Errorf("statement %q: %w", line, err)
		}

		if out != "" {
			fmt.Println(out)
		}
	}

	return scanner.Err()
}
