package cmd

import (
	"fmt"
	"os"

	"github.com/kdam/portfolio/internal/bootstrap"
	"github.com/kdam/portfolio/internal/constant"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd 不带子命令时启动服务
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site with pages, photo gallery and comments",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap.New().WithConfig(configPath).Run()
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constant.DefaultConfigPath, "配置文件路径")
	rootCmd.AddCommand(serverCmd, userCmd)
}
