// Package cmd provides the commands to call the translator from the command
// line.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"moinmd.de/m/internal/encoder"
	"moinmd.de/m/internal/logging"
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(*flag.FlagSet) (int, error) {
			fmt.Println("Available commands:")
			for _, name := range List() {
				fmt.Printf("- %q\n", name)
			}
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name: "version",
		Func: func(*flag.FlagSet) (int, error) {
			fmt.Printf("%v %v (%v@%v/%v)\n",
				mainName, mainVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name:     "file",
		Func:     cmdFile,
		SetFlags: flgTranslate,
	})
	RegisterCommand(Command{
		Name:     "dir",
		Func:     cmdDir,
		SetFlags: flgTree,
	})
	RegisterCommand(Command{
		Name:     "watch",
		Func:     cmdWatch,
		SetFlags: flgTree,
	})
}

func flgTranslate(fs *flag.FlagSet) {
	fs.String("t", encoder.EncodingMarkdown.String(), "target output encoding")
	fs.String("root", "", "path of the page in the new page tree")
	fs.Int("depth", 0, "nesting depth of the page below the wiki root")
	fs.String("o", "", "output file (default stdout)")
}

func flgTree(fs *flag.FlagSet) {
	fs.String("t", encoder.EncodingMarkdown.String(), "target output encoding")
	fs.String("root", "/src", "root path of the new page tree")
}

var (
	mainName    string
	mainVersion string
)

func setupLogging(fs *flag.FlagSet) {
	level := slog.LevelInfo
	if lf := fs.Lookup("l"); lf != nil {
		if val := lf.Value.String(); val != "" {
			if parsed := logging.ParseLevel(val); parsed != logging.LevelMissing {
				level = parsed
			}
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logging.ReplaceLevelAttr,
	})))
}

func executeCommand(name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	setupLogging(fs)
	exitCode, err := command.Func(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of the translator.
func Main(progName, buildVersion string) int {
	info := retrieveVCSInfo(buildVersion)
	mainName = progName
	mainVersion = info.revision
	if info.dirty {
		mainVersion += "-dirty"
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return executeCommand("help")
	}
	return executeCommand(args[0], args[1:]...)
}

type vcsInfo struct {
	revision string
	dirty    bool
	time     time.Time
}

func retrieveVCSInfo(version string) vcsInfo {
	buildTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsInfo{revision: version, dirty: false, time: buildTime}
	}
	result := vcsInfo{revision: version, time: buildTime}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			revision := "+" + kv.Value
			if len(revision) > 11 {
				revision = revision[:11]
			}
			result.revision = version + revision
		case "vcs.modified":
			if kv.Value == "true" {
				result.dirty = true
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, kv.Value); err == nil {
				result.time = t
			}
		}
	}
	return result
}
