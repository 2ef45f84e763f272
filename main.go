package main

import (
	"os"

	"finsight/cmd/advise"
	"finsight/cmd/chat"
	"finsight/cmd/classify"
	"finsight/cmd/report"
	"finsight/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(chat.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err.Error())
		os.Exit(1)
	}
}
