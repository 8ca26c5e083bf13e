package engine

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pbnjay/memory"
)

// LaunchOptions carry everything the command builder needs besides the
// version id
type LaunchOptions struct {
	Username string
	// RamGB is the max heap in GiB. 0 derives a value from system memory
	RamGB int
	// JavaBin is the path of the java executable to start
	JavaBin string
}

// Session is an offline game session. The UUID is a name-based (v3)
// uuid over the username, so the same name always maps to the same id.
type Session struct {
	Username string
	UUID     string
	Token    string
}

// OfflineSession derives the deterministic offline session for a username
func OfflineSession(username string) Session {
	return Session{
		Username: username,
		UUID:     uuid.NewMD5(uuid.NameSpaceDNS, []byte(username)).String(),
		Token:    "offline-token",
	}
}

// HeapFlags returns the -Xms/-Xmx pair for the configured RAM.
// The initial heap never exceeds 2G (or the max heap, whichever is
// smaller).
func HeapFlags(ramGB int) []string {
	if ramGB <= 0 {
		// quarter of the system memory, kept between 2G and 8G
		sysGiB := int(memory.TotalMemory() / 1024 / 1024 / 1024)
		ramGB = sysGiB / 4
		if ramGB < 2 {
			ramGB = 2
		}
		if ramGB > 8 {
			ramGB = 8
		}
	}

	initial := 2
	if ramGB < initial {
		initial = ramGB
	}

	return []string{
		fmt.Sprintf("-Xms%dG", initial),
		fmt.Sprintf("-Xmx%dG", ramGB),
	}
}

// BuildLaunchCmd returns an exec.Cmd ready to start the given version.
// All files must have been ensured before (EnsureVersion).
func (c *Client) BuildLaunchCmd(ctx context.Context, launchID string, opts *LaunchOptions) (*exec.Cmd, error) {
	man, err := c.LaunchManifest(ctx, launchID)
	if err != nil {
		return nil, err
	}

	if opts.JavaBin == "" {
		opts.JavaBin = "java"
	}

	libs := man.Libraries.Required()

	// extract native libraries. the dir sticks around because the game
	// outlives us (we spawn detached)
	nativesDir := filepath.Join(c.Layout.Root, "natives", launchID)
	if err := os.MkdirAll(nativesDir, 0755); err != nil {
		return nil, err
	}

	// build that spooky -cp arg
	cpArgs := make([]string, 0, len(libs)+1)
	for _, lib := range libs {
		path := filepath.Join(c.Layout.LibrariesDir(), lib.Filepath())
		if len(lib.Natives) != 0 {
			if err := extractNative(path, nativesDir); err != nil {
				return nil, err
			}
		}
		cpArgs = append(cpArgs, path)
	}

	mcJar := filepath.Join(c.Layout.VersionsDir(), man.MinecraftVersion(), man.JarName())
	cpArgs = append(cpArgs, mcJar)
	classPath := strings.Join(cpArgs, cpSeparator())

	session := OfflineSession(opts.Username)

	vars := map[string]string{
		"auth_player_name":  session.Username,
		"auth_uuid":         session.UUID,
		"auth_access_token": session.Token,
		"auth_xuid":         session.UUID,
		"clientid":          session.UUID,
		"user_type":         "legacy",

		"version_name":      launchID,
		"version_type":      man.Type,
		"game_directory":    c.Layout.Root,
		"assets_root":       c.Layout.AssetsDir(),
		"assets_index_name": man.Assets,
		"game_assets":       c.Layout.AssetsDir(),

		"launcher_name":    "MCV-Glass",
		"launcher_version": "4.0",

		"classpath":           classPath,
		"classpath_separator": cpSeparator(),
		"natives_directory":   nativesDir,
		"library_directory":   c.Layout.LibrariesDir(),
	}

	args := make([]string, 0, 32)
	args = append(args, HeapFlags(opts.RamGB)...)
	args = append(args,
		"-XX:+UnlockExperimentalVMOptions",
		"-XX:+UseG1GC",
	)
	if runtime.GOOS == "darwin" {
		// macos crashes without this
		args = append([]string{"-XstartOnFirstThread"}, args...)
	}
	args = append(args, substituteAll(man.JvmArgs(), vars)...)
	args = append(args, man.MainClass)
	args = append(args, substituteAll(man.GameArgs(), vars)...)

	// plain Command on purpose: the game is spawned detached and must
	// not die with our context
	cmd := exec.Command(opts.JavaBin, args...)
	cmd.Dir = c.Layout.Root
	cmd.Env = append(os.Environ(), "PWD="+c.Layout.Root)

	return cmd, nil
}

var variableRegex = regexp.MustCompile(`\$\{[a-zA-Z0-9_]+\}`)

// substituteAll replaces all ${var} templates with their value.
// Unresolvable variables are replaced with an empty string instead of
// leaking the template into the game.
func substituteAll(templates []string, vars map[string]string) []string {
	replacerArgs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		replacerArgs = append(replacerArgs, "${"+k+"}", v)
	}
	replacer := strings.NewReplacer(replacerArgs...)

	out := make([]string, 0, len(templates))
	for _, template := range templates {
		replaced := replacer.Replace(template)

		if variableRegex.MatchString(replaced) {
			replaced = variableRegex.ReplaceAllString(replaced, "")
		}
		out = append(out, replaced)
	}
	return out
}

func cpSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

func extractNative(jar string, target string) error {
	r, err := zip.OpenReader(jar)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		// skip META-INF and nested dirs
		if strings.Contains(f.Name, "/") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		dest, err := os.Create(filepath.Join(target, f.Name))
		if err != nil {
			rc.Close()
			return err
		}
		_, err = io.Copy(dest, rc)
		rc.Close()
		dest.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
