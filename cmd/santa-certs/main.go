package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to a command and returns the process exit code.
func run(args []string, env *Environment) int {
	command := "generate"
	rest := args
	if len(args) > 0 {
		switch args[0] {
		case "generate", "doctor", "version", "help":
			command = args[0]
			rest = args[1:]
		case "--help", "-h":
			printUsage(env.Stdout)
			return ExitSuccess
		}
	}

	switch command {
	case "version":
		fmt.Fprintf(env.Stdout, "santa-certs %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelpCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	}

	flags, err := parseGenerateFlags(rest)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printGenerateUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runGenerate(ctx, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
