/*
File    : fen/main/main.go

Package main is the entry point for the fen interpreter.
It provides three modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a fen source file from the command line
3. Server Mode: Host REPL sessions over TCP, one goroutine per connection

The interpreter uses a lexer-parser-evaluator pipeline to process fen code.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/fen-lang/fen/eval"
	"github.com/fen-lang/fen/parser"
	"github.com/fen-lang/fen/repl"
)

// VERSION represents the current version of the fen interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "fen-lang"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "fen >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
  ▄████  ▄████▄
  ██▀▀   ██▀ ▀██
  ██▀▀   ████████  ▄▄  ▄▄
  ██     ██ ██  ██ ▀██▄██▀
  ▀▀     ▀▀ ▀▀  ▀▀  ▀▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the fen interpreter. It determines the
// operating mode based on command-line arguments:
//
// Usage:
//
//	fen                  - Start in REPL (interactive) mode
//	fen <filename>       - Execute the specified fen source file
//	fen server <port>    - Start a REPL server on the given port
//	fen --help           - Display help information
//	fen --version        - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: fen server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the fen interpreter
func showHelp() {
	cyanColor.Println("fen - A small, tree-walking scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  fen                    Start interactive REPL mode")
	yellowColor.Println("  fen <path-to-file>     Execute a fen source file")
	yellowColor.Println("  fen server <port>      Start a REPL server on the given port")
	yellowColor.Println("  fen --help             Display this help message")
	yellowColor.Println("  fen --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                  Exit the REPL")
}

// showVersion displays the version information for the fen interpreter
func showVersion() {
	cyanColor.Println("fen - A small, tree-walking scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a fen source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(fileContent))
}

// startServer listens on port and hosts one REPL session per TCP
// connection, each in its own goroutine with its own Evaluator.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("fen REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient manages a single client connection for the REPL server,
// using the network connection as both the input reader and output
// writer.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates source with panic
// recovery. Per the command-line contract, parse and runtime errors
// are written to stdout followed by a newline, and the process exits
// non-zero; success exits zero.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stdout, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	stmts := par.Parse()

	if len(par.Errors) > 0 {
		for _, err := range par.Errors {
			redColor.Fprintf(os.Stdout, "%s\n", err)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	_, runErr := evaluator.Run(stmts)
	if runErr != nil {
		redColor.Fprintf(os.Stdout, "%s\n", runErr)
		os.Exit(1)
	}
}
