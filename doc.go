// Package confkit locates, loads, creates, and persists a single typed
// configuration file for an application, using the host platform's directory
// conventions and a compiled-in default.
//
// The library is built around three pieces:
//
//   - [Manager]: an immutable descriptor of one config file: the naming
//     tokens that locate it, the default text used to create it, and the
//     [Codec] for its format (TOML by default, YAML available).
//   - [LocateResult] and [OpenResult]: tri-state outcomes of finding and of
//     reading the file, consumed with their State accessors.
//   - [Handle]: a decoded record bound to its file path, supporting
//     Reload and Save.
//
// # Getting Started
//
// Define a record type, embed the default file, and call [Manager.Setup]:
//
//	//go:embed config_default.toml
//	var defaultConfig string
//
//	type AppConfig struct {
//		Output string `toml:"output"`
//		Number int    `toml:"number"`
//	}
//
//	mgr := confkit.New[AppConfig](
//		"com",          // qualifier (macOS bundle prefix)
//		"Cool Software", // organization
//		"TextPrinter",  // application
//		"config.toml",  // file name
//		defaultConfig,
//	)
//
//	msg, cfg, err := mgr.Setup()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(msg) // "Created new config file: …" or "Using existing config file: …"
//	fmt.Println(cfg.Data().Output)
//
// Setup writes the default file when none exists (creating the parent
// directory), loads the existing one when it does, and reports anything else
// as a complete error naming the path and the cause. [Manager.SetupReplaceInvalid]
// additionally regenerates a file that exists but does not decode, preserving
// the old content under its [BackupPath].
//
// # Saving and Reloading
//
//	cfg.Data().Number = 5
//	if err := cfg.Save(true, false); err != nil { // back up the old file first
//		log.Fatal(err)
//	}
//	if err := cfg.Reload(); err != nil {
//		log.Fatal(err)
//	}
//
// Save truncates the bound file in place; with createBackup the prior
// contents are first renamed to a ".bkp."-prefixed sibling, best effort.
//
// # Normalization
//
// A record type may implement [Preparer] (or a [WithPrepare] option may be
// set) to enforce invariants the file format cannot express. The hook runs
// exactly once per successful decode, before any caller sees the record.
//
// # Error Classification
//
// Top-level failures wrap the package sentinels, so callers can branch with
// errors.Is on [ErrNoConfigPath], [ErrInaccessible], [ErrInvalid], and
// [ErrSerialize] while still seeing a human-readable description.
//
// # Concurrency
//
// All operations are synchronous, blocking I/O on the calling goroutine. The
// library does not arbitrate concurrent access to the underlying file; last
// writer wins.
package confkit
