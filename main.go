/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/google/logismos/core/ast"
	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/eval"
	"github.com/google/logismos/core/parser"
	"github.com/google/logismos/core/scanner"
	"github.com/google/logismos/core/server"
)

// Exit codes follow the sysexits convention: 64 for usage errors, 65 for
// bad expressions, 70 for runtime failures and 74 for unreadable files.
const (
	exitUsage    = 64
	exitData     = 65
	exitSoftware = 70
	exitIO       = 74
)

func main() {
	app := &cli.App{
		Name:  "logismos",
		Usage: "scan, parse and evaluate expressions",
		Action: func(c *cli.Context) error {
			// With no arguments start the interactive prompt;
			// with a single argument evaluate the file.
			switch c.Args().Len() {
			case 0:
				return runPrompt()
			case 1:
				return runFile(c.Args().First())
			default:
				return cli.Exit("usage: logismos [file]", exitUsage)
			}
		},
		Commands: []*cli.Command{
			replCommand(),
			runCommand(),
			tokensCommand(),
			astCommand(),
			serveCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "start an interactive prompt",
		Action: func(c *cli.Context) error {
			return runPrompt()
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "evaluate an expression file and print the result",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: logismos run <file>", exitUsage)
			}
			return runFile(c.Args().First())
		},
	}
}

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "print the token stream of an expression file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: logismos tokens <file>", exitUsage)
			}
			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			tokens, err := scanner.Scan(source)
			if err != nil {
				return exitError(err, source)
			}
			for _, tok := range tokens {
				fmt.Printf("%4d:%-4d %-13s %q\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
			}
			return nil
		},
	}
}

func astCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "print the parse tree of an expression file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "notation",
				Value: "lisp",
				Usage: "tree notation: lisp, polish or rpn",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: logismos ast [--notation lisp|polish|rpn] <file>", exitUsage)
			}
			notation, err := ast.ParseNotation(c.String("notation"))
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			tokens, err := scanner.Scan(source)
			if err != nil {
				return exitError(err, source)
			}
			tree, err := parser.Parse(tokens)
			if err != nil {
				return exitError(err, source)
			}
			fmt.Println(ast.Print(tree, notation))
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the web playground",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "127.0.0.1:8097",
				Usage: "address to listen on",
			},
		},
		Action: func(c *cli.Context) error {
			srv, err := server.NewServer()
			if err != nil {
				return err
			}

			http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				if err := srv.HandlePlaygroundRequest(w, r.URL, w.Header().Set); err != nil {
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			})

			addr := c.String("addr")
			log.Printf("Listening on http://%s", addr)
			return http.ListenAndServe(addr, nil)
		},
	}
}

// run evaluates source and prints the result to stdout.
func run(source string) error {
	tokens, err := scanner.Scan(source)
	if err != nil {
		return err
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	val, err := eval.Evaluate(tree)
	if err != nil {
		return err
	}
	fmt.Println(val.String())
	return nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", cli.Exit(fmt.Sprintf("logismos: %v", err), exitIO)
	}
	return string(data), nil
}

func runFile(path string) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	if err := run(source); err != nil {
		return exitError(err, source)
	}
	return nil
}

// runPrompt reads expressions line by line. A failed line is reported and
// the prompt keeps going; a blank line or EOF ends the session.
func runPrompt() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("logismos - type an expression, blank line to exit")
	}

	input := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !input.Scan() {
			break
		}
		line := input.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		if err := run(line); err != nil {
			fmt.Fprintln(os.Stderr, diag.Format(err, line))
		}
	}
	return input.Err()
}

// exitError converts a pipeline failure into a formatted report with the
// matching exit code.
func exitError(err error, source string) error {
	code := exitSoftware
	var derr *diag.Error
	if errors.As(err, &derr) && (derr.Kind == diag.Syntax || derr.Kind == diag.Parse) {
		code = exitData
	}
	return cli.Exit(diag.Format(err, source), code)
}
