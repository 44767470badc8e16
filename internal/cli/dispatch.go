package cli

import (
	"fmt"
	"strings"
)

type action int

const (
	actionList action = iota
	actionSwitch
	actionSwap
	actionRename
	actionDelete
	actionCurrent
)

const swapToken = "-"

type invocation struct {
	action  action
	name    string
	oldName string
	newName string
	force   bool
}

type dispatchFlags struct {
	force   bool
	delete  bool
	current bool
}

// usageError marks argument-shape problems; the caller prints usage for them.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func parseInvocation(args []string, flags dispatchFlags) (invocation, error) {
	switch {
	case flags.current:
		if flags.force || flags.delete {
			return invocation{}, newUsageError("--current cannot be combined with --force or --delete")
		}
		if len(args) > 0 {
			return invocation{}, newUsageError("too many arguments for --current")
		}
		return invocation{action: actionCurrent}, nil

	case flags.delete:
		if flags.force {
			return invocation{}, newUsageError("--force cannot be combined with --delete")
		}
		if len(args) == 0 {
			return invocation{}, newUsageError("missing NAME for --delete")
		}
		if len(args) > 1 {
			return invocation{}, newUsageError("too many arguments for --delete")
		}
		name := strings.TrimSpace(args[0])
		if name == "" {
			return invocation{}, newUsageError("missing NAME for --delete")
		}
		return invocation{action: actionDelete, name: name}, nil

	case flags.force:
		if len(args) == 0 {
			return invocation{}, newUsageError("missing NEW=OLD for --force")
		}
		if len(args) > 1 {
			return invocation{}, newUsageError("too many arguments for --force")
		}
		if !strings.Contains(args[0], "=") {
			return invocation{}, newUsageError("--force is only valid with NEW=OLD")
		}
		inv, err := parseRename(args[0])
		if err != nil {
			return invocation{}, err
		}
		inv.force = true
		return inv, nil
	}

	switch len(args) {
	case 0:
		return invocation{action: actionList}, nil
	case 1:
	default:
		return invocation{}, newUsageError("too many arguments")
	}

	arg := strings.TrimSpace(args[0])
	switch {
	case arg == swapToken:
		return invocation{action: actionSwap}, nil
	case strings.Contains(arg, "="):
		return parseRename(arg)
	case arg == "":
		return invocation{}, newUsageError("missing NAME")
	default:
		return invocation{action: actionSwitch, name: arg}, nil
	}
}

func parseRename(arg string) (invocation, error) {
	newName, oldName, _ := strings.Cut(arg, "=")
	newName = strings.TrimSpace(newName)
	oldName = strings.TrimSpace(oldName)
	if newName == "" || oldName == "" {
		return invocation{}, newUsageError("invalid rename %q (expected NEW=OLD)", arg)
	}
	return invocation{action: actionRename, newName: newName, oldName: oldName}, nil
}
