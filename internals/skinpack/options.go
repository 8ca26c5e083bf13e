package skinpack

import (
	"encoding/json"
	"os"
	"strings"
)

// resourcePacksKey is the options.txt key listing enabled resource packs
const resourcePacksKey = "resourcePacks:"

// Register makes sure packID is listed in the resourcePacks line of
// the options file. Every other line is passed through untouched and
// in order; registering twice is a no-op. A resourcePacks line whose
// value does not parse as a json array is left alone — broken or not,
// user settings are never rewritten blindly.
func Register(optionsPath string, packID string) error {
	buf, err := os.ReadFile(optionsPath)
	if os.IsNotExist(err) {
		line, err := packLine(packID, nil)
		if err != nil {
			return err
		}
		return os.WriteFile(optionsPath, []byte(line+"\n"), 0644)
	}
	if err != nil {
		return err
	}

	patched, changed := patchOptions(string(buf), packID)
	if !changed {
		return nil
	}
	return os.WriteFile(optionsPath, []byte(patched), 0644)
}

// patchOptions patches the resourcePacks line within the full options
// content. It reports whether anything changed.
func patchOptions(content string, packID string) (string, bool) {
	lines := strings.Split(content, "\n")
	found := false
	changed := false

	for i, line := range lines {
		if !strings.HasPrefix(line, resourcePacksKey) {
			continue
		}
		found = true

		patched, ok := patchPackList(line, packID)
		if ok && patched != line {
			lines[i] = patched
			changed = true
		}
		break
	}

	if !found {
		line, err := packLine(packID, nil)
		if err != nil {
			return content, false
		}
		// keep a trailing newline at the end of the file
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines[len(lines)-1] = line
			lines = append(lines, "")
		} else {
			lines = append(lines, line)
		}
		changed = true
	}

	return strings.Join(lines, "\n"), changed
}

// patchPackList appends packID to a single resourcePacks line. ok is
// false when the value is not a parseable json array.
func patchPackList(line string, packID string) (string, bool) {
	value := line[len(resourcePacksKey):]

	var packs []string
	if err := json.Unmarshal([]byte(value), &packs); err != nil {
		return line, false
	}

	for _, p := range packs {
		if p == packID {
			return line, true
		}
	}

	patched, err := packLine(packID, packs)
	if err != nil {
		return line, false
	}
	return patched, true
}

func packLine(packID string, existing []string) (string, error) {
	buf, err := json.Marshal(append(existing, packID))
	if err != nil {
		return "", err
	}
	return resourcePacksKey + string(buf), nil
}
