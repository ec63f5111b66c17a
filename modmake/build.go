package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	smartxorVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	smartxor := NewAppBuild("smartxor", "cmd/smartxor", smartxorVersion)
	smartxor.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", smartxorVersion).
			CgoEnabled(false)
	})
	smartxor.Variant("windows", "amd64")
	smartxor.Variant("linux", "amd64")
	smartxor.Variant("linux", "arm64")
	smartxor.Variant("darwin", "amd64")
	smartxor.Variant("darwin", "arm64")
	b.ImportApp(smartxor)

	b.Execute()
}
