package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep duplicated code blocks in sync with their source of truth"
	MsgSyncShort       = "Synchronize ref blocks with their source of truth"
	MsgListShort       = "List source_of_truth blocks and their references"
	MsgGenConfigShort  = "Generate a project configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - No files were written"
	MsgConfigWritten  = "Wrote configuration to %s"
	MsgVersionFormat  = "blocksync version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCommandGiven = "no command specified"

	// Error messages
	MsgErrConfigExist = "%s already exists, use --force to replace it"
	MsgErrRenderer    = "failed to create renderer: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Report what would change without writing any file"
	MsgFlagForce   = "Run even if a recent run over the same roots succeeded"
	MsgFlagConfig  = "Project config file (default: .blocksync.toml in the current directory)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagWrite   = "Write the configuration to .blocksync.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
