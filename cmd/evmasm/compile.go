package main

import (
	"fmt"
	"os"

	"github.com/evmasm-go/evmasm/pkg/asmconfig"
	"github.com/evmasm-go/evmasm/pkg/asmcore/assembler"
	"github.com/evmasm-go/evmasm/pkg/asmcore/deploy"
	"github.com/evmasm-go/evmasm/pkg/asmlog"
	"github.com/evmasm-go/evmasm/pkg/contractio"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Args:  cobra.NoArgs,
	Short: "Compile one or more evmm contracts to bytecode",
	Long:  `Reads .evmm contract source, either a single file or every .evmm file in a directory, and writes assembled bytecode.`,
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringP("contract", "c", "", "path to a single .evmm contract file")
	compileCmd.Flags().StringP("target-directory", "t", "", "directory of .evmm contract files to compile")
	compileCmd.Flags().BoolP("print", "p", false, "print bytecode to stdout instead of writing files")
	compileCmd.Flags().StringP("output-directory", "o", "", "directory to write compiled bytecode to (overrides config)")
	compileCmd.Flags().BoolP("deployment-bytecode", "d", false, "wrap output in a deployment constructor")
}

func runCompile(cmd *cobra.Command, args []string) error {
	contractPath, _ := cmd.Flags().GetString("contract")
	targetDir, _ := cmd.Flags().GetString("target-directory")
	print, _ := cmd.Flags().GetBool("print")
	outputDir, _ := cmd.Flags().GetString("output-directory")
	wantDeploy, _ := cmd.Flags().GetBool("deployment-bytecode")

	if contractPath != "" && targetDir != "" {
		return fmt.Errorf("--contract and --target-directory are mutually exclusive")
	}
	if print && outputDir != "" {
		return fmt.Errorf("--print and --output-directory are mutually exclusive")
	}

	cfg, err := asmconfig.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if outputDir == "" {
		outputDir = cfg.Assembler.OutputDir
	}
	if contractPath == "" && targetDir == "" {
		targetDir = cfg.Assembler.ContractsDir
	}

	logLevel := asmlog.LogLevel(cfg.Logging.Level)
	if verbose {
		logLevel = asmlog.LogLevelDebug
	}
	logger := asmlog.NewLogger(asmlog.LoggerConfig{
		Level:  logLevel,
		Format: asmlog.LogFormat(cfg.Logging.Format),
		Output: os.Stdout,
	})

	var contracts []contractio.Contract
	if contractPath != "" {
		c, err := contractio.DiscoverFile(contractPath)
		if err != nil {
			return err
		}
		contracts = []contractio.Contract{c}
	} else {
		contracts, err = contractio.DiscoverDir(targetDir)
		if err != nil {
			return err
		}
	}

	for _, c := range contracts {
		logger.Info("compiling contract", "file", c.Source)

		bytecode, err := assembler.Assemble(c.Body)
		if err != nil {
			logger.Error("compilation failed", "file", c.Source, "error", err.Error())
			return fmt.Errorf("%s: %w", c.Source, err)
		}

		if wantDeploy {
			bytecode, err = deploy.Wrap(bytecode)
			if err != nil {
				return fmt.Errorf("%s: %w", c.Source, err)
			}
		}

		if print {
			fmt.Println(bytecode)
			continue
		}

		name := contractio.OutputName(c.Stem, wantDeploy)
		if err := contractio.Write(outputDir, name, bytecode); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		logger.Info("wrote bytecode", "file", name, "bytes", len(bytecode)/2)
	}

	return nil
}
