package app

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type recordedCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls   []recordedCall
	stdout  string
	stderr  string
	err     error
	respond func(args []string) (stdout string, stderr string, err error)
}

func (f *fakeRunner) run(name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, recordedCall{name: name, args: args})
	if f.respond != nil {
		stdout, stderr, err := f.respond(args)
		return []byte(stdout), []byte(stderr), err
	}
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newTestGcloudStore(runner *fakeRunner) *gcloudStore {
	store := newGcloudStore("/usr/bin/gcloud", recordFiles{dir: "/nonexistent"}, zap.NewNop())
	store.run = runner.run
	return store
}

// activeDevRunner behaves like gcloud with dev active: it lists dev and
// staging and refuses to delete dev.
func activeDevRunner() *fakeRunner {
	return &fakeRunner{respond: func(args []string) (string, string, error) {
		joined := strings.Join(args, " ")
		switch {
		case strings.Contains(joined, "--filter=is_active:true"):
			return "dev\n", "", nil
		case strings.HasPrefix(joined, "config configurations delete dev"):
			return "", "ERROR: (gcloud.config.configurations.delete) Deleting named configuration failed because configuration [dev] is set as active.  Use `gcloud config configurations activate` to change the active configuration.\n", errors.New("exit status 1")
		case strings.HasPrefix(joined, "config configurations delete"):
			return "", "", nil
		default:
			return "", "", errors.New("unexpected gcloud call: " + joined)
		}
	}}
}

func TestGcloudStoreListProfiles(t *testing.T) {
	runner := &fakeRunner{stdout: "default\nstaging\n\n  dev  \n"}
	store := newTestGcloudStore(runner)

	got, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := []string{"default", "staging", "dev"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected profiles: got %v, want %v", got, want)
	}
	wantArgs := []string{"config", "configurations", "list", "--format=value(name)"}
	if len(runner.calls) != 1 || runner.calls[0].name != "/usr/bin/gcloud" || !reflect.DeepEqual(runner.calls[0].args, wantArgs) {
		t.Fatalf("unexpected calls: %+v", runner.calls)
	}
}

func TestGcloudStoreActiveProfile(t *testing.T) {
	runner := &fakeRunner{stdout: "staging\n"}
	store := newTestGcloudStore(runner)

	got, err := store.ActiveProfile()
	if err != nil || got != "staging" {
		t.Fatalf("unexpected active: %q, %v", got, err)
	}
	if !strings.Contains(strings.Join(runner.calls[0].args, " "), "--filter=is_active:true") {
		t.Fatalf("expected active filter, got %v", runner.calls[0].args)
	}

	runner.stdout = ""
	if _, err := store.ActiveProfile(); !errors.Is(err, errStoreCommand) {
		t.Fatalf("expected store error for empty output, got %v", err)
	}
}

func TestGcloudStoreActivateUnknownProfile(t *testing.T) {
	runner := &fakeRunner{
		stderr: "ERROR: (gcloud.config.configurations.activate) Cannot activate configuration [nope], it does not exist.\n",
		err:    errors.New("exit status 1"),
	}
	store := newTestGcloudStore(runner)

	err := store.Activate("nope")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
	if !strings.Contains(err.Error(), "Cannot activate configuration [nope]") {
		t.Fatalf("expected gcloud message in error, got %v", err)
	}
}

func TestGcloudStoreDeleteFailure(t *testing.T) {
	runner := &fakeRunner{
		stderr: "ERROR: (gcloud.config.configurations.delete) [Errno 13] Permission denied: '/home/u/.config/gcloud/configurations/config_dev'\n",
		err:    errors.New("exit status 1"),
	}
	store := newTestGcloudStore(runner)

	err := store.Delete("dev")
	if !errors.Is(err, errStoreCommand) || errors.Is(err, ErrUnknownProfile) || errors.Is(err, errActiveConfiguration) {
		t.Fatalf("expected store command error, got %v", err)
	}
	wantArgs := []string{"config", "configurations", "delete", "dev", "--quiet"}
	if !reflect.DeepEqual(runner.calls[0].args, wantArgs) {
		t.Fatalf("unexpected args: %v", runner.calls[0].args)
	}
	if classifyExit(err) != ExitStoreFailure {
		t.Fatalf("expected store failure exit code, got %d", classifyExit(err))
	}
}

func TestGcloudStoreDeleteActiveRemovesRecord(t *testing.T) {
	dir := t.TempDir()
	runner := activeDevRunner()
	store := newTestGcloudStore(runner)
	store.recordFiles = recordFiles{dir: dir}
	if err := os.WriteFile(store.recordPath("dev"), []byte("[core]\n"), 0o600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	if err := store.Delete("dev"); err != nil {
		t.Fatalf("delete active: %v", err)
	}
	if ok, _ := store.RecordExists("dev"); ok {
		t.Fatalf("expected dev record removed")
	}
}

func TestGcloudStoreDeleteActiveWithoutRecordFails(t *testing.T) {
	runner := activeDevRunner()
	store := newTestGcloudStore(runner)
	store.recordFiles = recordFiles{dir: t.TempDir()}

	err := store.Delete("dev")
	if !errors.Is(err, errActiveConfiguration) {
		t.Fatalf("expected active configuration error, got %v", err)
	}
}
