package server

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Flags struct {
	Port    string
	AppName string
	Prod    bool
	// LogFile writes logs to ./log/<appname>.log instead of stdout
	LogFile bool
}

// ParseFlags reads the command line, falling back to APP_NAME and SERVER_LISTEN_URL.
func ParseFlags(appName string, port string) Flags {
	return parseFlags(flag.CommandLine, os.Args[1:], appName, port)
}

func parseFlags(fs *flag.FlagSet, args []string, appName string, port string) Flags {
	var f Flags
	fs.StringVar(&f.Port, "port", helper.GetenvStr("SERVER_LISTEN_URL", port), "port to listen on")
	fs.StringVar(&f.AppName, "appname", helper.GetenvStr("APP_NAME", appName), "application name")
	fs.BoolVar(&f.Prod, "prod", false, "enable prefork in production")
	fs.BoolVar(&f.LogFile, "logger", false, "write logs to ./log")
	_ = fs.Parse(args)
	return f
}

// Addr turns a bare port into a listen address.
func (f Flags) Addr() string {
	if f.Port == "" || strings.Contains(f.Port, ":") {
		return f.Port
	}
	return ":" + f.Port
}

// InitLogging configures helper.Logger. The returned closer is nil when logging to stdout.
func InitLogging(f Flags) (io.Closer, error) {
	level := helper.GetenvStr("LOG_LEVEL", "info")
	if !f.LogFile {
		helper.InitLogger(f.AppName, level, os.Stdout)
		return nil, nil
	}
	if err := os.MkdirAll("log", 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join("log", f.AppName+".log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, err
	}
	helper.InitLogger(f.AppName, level, file)
	return file, nil
}
