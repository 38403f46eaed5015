// Package version хранит сведения о сборке, подставляемые через -ldflags:
//
//	-X github.com/vladislavdragonenkov/ordering/internal/version.version=v1.2.0
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// readBuildInfo подменяется в тестах.
var readBuildInfo = debug.ReadBuildInfo

// Info возвращает версию, коммит и дату сборки. Без -ldflags коммит и дата
// берутся из VCS-меток, которые go build записывает в бинарник.
func Info() (v, c, d string) {
	v, c, d = version, commit, date
	if c != "unknown" && d != "unknown" {
		return v, c, d
	}
	info, ok := readBuildInfo()
	if !ok {
		return v, c, d
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && c == "unknown":
			c = s.Value
		case s.Key == "vcs.time" && d == "unknown":
			d = s.Value
		}
	}
	return v, c, d
}

func GetVersion() string { return version }

func GetCommit() string {
	_, c, _ := Info()
	return c
}

func GetDate() string {
	_, _, d := Info()
	return d
}

// String: однострочное описание сборки для логов.
func String() string {
	v, c, d := Info()
	return fmt.Sprintf("version=%s commit=%s date=%s", v, c, d)
}
