package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/debugs"
	"github.com/reusee/mangrove/lexconfigs"
	"github.com/reusee/mangrove/lexers"
)

type Module struct {
	dscope.Module
	Lexers     lexers.Module
	LexConfigs lexconfigs.Module
	Debugs     debugs.Module
}
