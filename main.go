package main

import (
	"github.com/alecthomas/kong"
	"github.com/lepinkainen/ffrotate/cmd"
	"github.com/lepinkainen/ffrotate/types"
)

var Version = "dev"

type CLI struct {
	Rotate  cmd.RotateCmd  `cmd:"" help:"Batch-rotate video files losslessly"`
	Preview cmd.PreviewCmd `cmd:"" help:"Extract a rotated preview frame from a video's midpoint"`
	Verify  cmd.VerifyCmd  `cmd:"" help:"Verify a rotated output against its source by frame comparison"`
}

func main() {
	var cli CLI
	appCtx := &types.AppContext{Version: Version}
	ctx := kong.Parse(&cli,
		kong.Name("ffrotate"),
		kong.Description("Lossless batch video rotation using FFmpeg"),
		kong.Bind(appCtx),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
