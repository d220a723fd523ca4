package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/lambdaphoton/lp/internal/ast"
	"github.com/lambdaphoton/lp/internal/codegen"
	"github.com/lambdaphoton/lp/internal/errors"
	"github.com/lambdaphoton/lp/internal/lexer"
	"github.com/lambdaphoton/lp/internal/linker"
	"github.com/lambdaphoton/lp/internal/optimizer"
	"github.com/lambdaphoton/lp/internal/parser"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputPath string
	emitLLVM   bool
	optLevel   int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "lp <input>",
	Short: "Lambda Photon compiler",
	Long: `lp compiles a Lambda Photon source file to a native executable.

The pipeline is: lex, parse, fold constants, lower to LLVM IR, then hand the
module to the system linker (or print the textual IR with --emit-llvm).`,
	Args:    cobra.ExactArgs(1),
	Version: Version,
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "a.out", "output path")
	rootCmd.Flags().BoolVar(&emitLLVM, "emit-llvm", false, "print the textual LLVM IR instead of linking a binary")
	rootCmd.Flags().IntVarP(&optLevel, "opt", "O", 2, "optimization level (0-3)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// stage times and reports a single pipeline phase when --verbose is set.
func stage(name string, fn func()) {
	start := time.Now()
	fn()
	if verbose {
		fmt.Fprintf(os.Stderr, "lp: %s took %s\n", name, time.Since(start))
	}
}

func runCompile(_ *cobra.Command, args []string) error {
	inputPath := args[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindIOReadFailed, err)
		return err
	}

	var toks *lexer.TokenStream
	stage("lex", func() { toks = lexer.Lex(string(source)) })
	if toks.Failed() {
		fmt.Fprintln(os.Stderr, errors.New(errors.KindLexFailed, lexer.Position{}, "tokenization failed", string(source), inputPath).Format(true))
		return fmt.Errorf("lex failed")
	}

	var prog *ast.Program
	stage("parse", func() { prog = parser.Parse(toks) })

	var folded *ast.Program
	stage("fold", func() { folded = optimizer.Fold(prog).(*ast.Program) })

	cg := codegen.New(inputPath)
	defer cg.Dispose()
	stage("codegen", func() { cg.Lower(folded) })

	if err := cg.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindVerifyFailed, err)
	}

	if emitLLVM {
		if outputPath == "a.out" {
			fmt.Println(cg.String())
			return nil
		}
		if err := os.WriteFile(outputPath, []byte(cg.String()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindEmitFailed, err)
			return err
		}
		return nil
	}

	tm, err := codegen.NewHostTargetMachine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindEmitFailed, err)
		return err
	}

	var obj []byte
	var emitErr error
	stage("emit", func() {
		if err := cg.Optimize(optLevel, tm); err != nil {
			emitErr = err
			return
		}
		obj, emitErr = cg.EmitObject(tm)
	})
	if emitErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindEmitFailed, emitErr)
		return emitErr
	}

	if err := linker.Link(obj, outputPath, optLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.KindLinkFailed, err)
		return err
	}

	return nil
}
