package main

import (
	"fmt"
	"io"
	"os"

	"MisakaART/logger"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if e := run(os.Args); e != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "artdemo",
		Usage: "in-memory adaptive radix tree playground",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-dir",
				Usage:   "directory where log files are written",
				Value:   DefaultLogPath(),
				EnvVars: []string{LogDirEnv},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "also print log lines to stderr",
				EnvVars: []string{VerboseEnv},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdRun,
	}
	return app.Run(args)
}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "insert, print, search and remove two keys sharing a prefix",
	Action: func(cctx *cli.Context) error {
		art, e := Init(cctx.String("log-dir"), cctx.Bool("verbose"))
		if e != nil {
			return cli.Exit(e.Error(), 1)
		}
		defer art.Destroy()

		e = RunDemo(cctx.App.Writer)
		if e != nil {
			logger.GenerateErrorLog(false, true, e.Error())
			return cli.Exit(e.Error(), 1)
		}
		return nil
	},
}

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "execute RESP or inline commands read from a script or stdin",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "script",
			Aliases: []string{"s"},
			Usage:   "path of the command script, stdin is used when empty",
		},
	},
	Action: func(cctx *cli.Context) error {
		art, e := Init(cctx.String("log-dir"), cctx.Bool("verbose"))
		if e != nil {
			return cli.Exit(e.Error(), 1)
		}
		defer art.Destroy()

		var in io.Reader = os.Stdin
		if path := cctx.String("script"); path != "" {
			f, e := os.Open(path)
			if e != nil {
				if os.IsNotExist(e) {
					e = logger.FileIsNotExist
				}
				logger.GenerateErrorLog(false, false, e.Error(), path)
				return cli.Exit(errors.Wrapf(e, "open script %s", path).Error(), 1)
			}
			defer f.Close()
			in = f
		}

		e = art.Serve(in, cctx.App.Writer)
		if e != nil {
			logger.GenerateErrorLog(false, false, e.Error())
			return cli.Exit(e.Error(), 1)
		}
		return nil
	},
}
