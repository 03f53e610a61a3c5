// Command cellctl is an interactive inspector for a file-backed cell store.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/xutdns/ink/pkg/cell"
	"github.com/xutdns/ink/pkg/cell/filehost"
	"github.com/xutdns/ink/pkg/fs"
)

type config struct {
	Path        string `json:"path"`
	UserVersion uint64 `json:"userVersion"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cellctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("cellctl", pflag.ContinueOnError)

	path := flags.String("path", "", "path to the cell store file")
	userVersion := flags.Uint64("user-version", 0, "schema tag recorded in a freshly created store")
	configPath := flags.String("config", "", "hujson config file (path, userVersion)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config{Path: *path, UserVersion: *userVersion}

	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return err
		}

		if cfg.Path == "" {
			cfg.Path = loaded.Path
		}

		cfg.UserVersion = loaded.UserVersion
	}

	if cfg.Path == "" {
		return fmt.Errorf("cellctl: --path (or a --config with a path) is required")
	}

	fsys := fs.NewReal()

	host, err := filehost.Open(fsys, cfg.Path, filehost.Options{UserVersion: cfg.UserVersion})
	if err != nil {
		return fmt.Errorf("cellctl: opening %q: %w", cfg.Path, err)
	}
	defer host.Close()

	repl := &REPL{host: host, path: cfg.Path}

	return repl.Run()
}

func loadConfig(path string) (config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("cellctl: reading config %q: %w", path, err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return config{}, fmt.Errorf("cellctl: parsing config %q: %w", path, err)
	}

	var cfg config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return config{}, fmt.Errorf("cellctl: decoding config %q: %w", path, err)
	}

	return cfg, nil
}

// REPL is an interactive session over a single open cell store.
type REPL struct {
	host  *filehost.Host
	path  string
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return home + "/.cellctl_history"
}

// Run drives the read-eval-print loop until the user exits or EOF.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("cellctl: %s (type 'help' for commands)\n", r.path)

	for {
		line, err := r.liner.Prompt("cellctl> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				break
			}

			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		if r.dispatch(line) {
			break
		}
	}

	r.saveHistory()

	return nil
}

func (r *REPL) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		r.liner.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) completer(line string) []string {
	cmds := []string{"get", "set", "clear", "len", "flush", "help", "exit"}

	var out []string

	for _, c := range cmds {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}

	return out
}

// dispatch runs one command line and reports whether the REPL should exit.
func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "get":
		r.cmdGet(args)
	case "set":
		r.cmdSet(args)
	case "clear":
		r.cmdClear(args)
	case "len":
		r.cmdLen()
	case "flush":
		r.cmdFlush()
	case "help":
		r.printHelp()
	case "exit", "quit":
		return true
	default:
		fmt.Printf("unknown command %q (try 'help')\n", cmd)
	}

	return false
}

func (r *REPL) printHelp() {
	fmt.Println(`commands:
  get <hex-key>             print the cell at key, or "<empty>"
  set <hex-key> <hex-data>  write data to key
  clear <hex-key>           remove the cell at key
  len                       print the number of live cells
  flush                     write pending changes to disk now
  exit                      save history and quit`)
}

func (r *REPL) parseKey(s string) (cell.Key, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return cell.Key{}, fmt.Errorf("invalid hex key %q: %w", s, err)
	}

	if len(raw) > cell.KeySize {
		return cell.Key{}, fmt.Errorf("key %q is longer than %d bytes", s, cell.KeySize)
	}

	var key cell.Key
	copy(key[cell.KeySize-len(raw):], raw)

	return key, nil
}

func (r *REPL) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: get <hex-key>")
		return
	}

	key, err := r.parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, ok := r.host.GetCell(key)
	if !ok {
		fmt.Println("<empty>")
		return
	}

	fmt.Println(hex.EncodeToString(data))
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: set <hex-key> <hex-data>")
		return
	}

	key, err := r.parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := hex.DecodeString(args[1])
	if err != nil {
		fmt.Printf("invalid hex data %q: %v\n", args[1], err)
		return
	}

	r.host.SetCell(key, data)
}

func (r *REPL) cmdClear(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: clear <hex-key>")
		return
	}

	key, err := r.parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	r.host.ClearCell(key)
}

func (r *REPL) cmdLen() {
	fmt.Println(strconv.Itoa(r.host.Len()))
}

func (r *REPL) cmdFlush() {
	if err := r.host.Flush(); err != nil {
		fmt.Println("flush failed:", err)
		return
	}

	fmt.Println("flushed")
}
