package minecraft

import (
	"encoding/json"
	"strings"
)

// LaunchManifest is a version.json manifest that is used to launch minecraft instances
type LaunchManifest struct {
	ID string `json:"id"`
	// MinecraftArguments are used before 1.13
	MinecraftArguments string `json:"minecraftArguments"`
	// Arguments is the new (complicated) system
	Arguments struct {
		Game []Argument `json:"game"`
		JVM  []Argument `json:"jvm"`
	} `json:"arguments"`
	Downloads struct {
		Client Artifact `json:"client"`
		Server Artifact `json:"server"`
	} `json:"downloads"`
	Libraries  Libraries `json:"libraries"`
	Type       string    `json:"type"`
	MainClass  string    `json:"mainClass"`
	Jar        string    `json:"jar"`
	Assets     string    `json:"assets"`
	AssetIndex struct {
		ID        string `json:"id"`
		Sha1      string `json:"sha1"`
		Size      int    `json:"size"`
		TotalSize int    `json:"totalSize"`
		URL       string `json:"url"`
	} `json:"assetIndex"`
	JavaVersion struct {
		Component    string `json:"component"`
		MajorVersion int    `json:"majorVersion"`
	} `json:"javaVersion"`
	InheritsFrom string `json:"inheritsFrom"`
}

// MinecraftVersion returns the vanilla minecraft version this manifest
// is based on. Loader manifests (fabric, forge) point at their parent
// through `jar` or `inheritsFrom`, everything else is its own base.
func (l *LaunchManifest) MinecraftVersion() string {
	switch {
	case l.Jar != "":
		return l.Jar
	case l.InheritsFrom != "":
		return l.InheritsFrom
	default:
		return l.ID
	}
}

// JarName returns the file name of the client jar to launch
func (l *LaunchManifest) JarName() string {
	return l.MinecraftVersion() + ".jar"
}

// MergeWith merges important properties with another manifest
// if they are not present in the current one
// it also merges libraries by appending them.
// This is a simple implementation. it does not merge everything and
// does not care for duplicates in `Libraries`
func (l *LaunchManifest) MergeWith(merge *LaunchManifest) {
	l.Libraries = append(l.Libraries, merge.Libraries...)

	if l.MainClass == "" {
		l.MainClass = merge.MainClass
	}
	if l.Assets == "" {
		l.Assets = merge.Assets
	}
	if l.AssetIndex.ID == "" {
		l.AssetIndex = merge.AssetIndex
	}
	if l.JavaVersion.MajorVersion == 0 {
		l.JavaVersion = merge.JavaVersion
	}
	if len(l.Downloads.Client.URL) == 0 {
		l.Downloads = merge.Downloads
	}

	if len(l.Arguments.Game) == 0 && l.MinecraftArguments == "" {
		l.Arguments.Game = merge.Arguments.Game
		l.MinecraftArguments = merge.MinecraftArguments
	} else {
		// loader manifests prepend their own args to the vanilla ones
		l.Arguments.Game = append(merge.Arguments.Game, l.Arguments.Game...)
	}
	l.Arguments.JVM = append(merge.Arguments.JVM, l.Arguments.JVM...)
}

// GameArgs returns the game arguments defined in the manifest,
// with non-applying rule blocks filtered out. Variables (${…}) are
// not substituted here.
func (l *LaunchManifest) GameArgs() []string {
	// easy minecraft versions before 1.13
	if l.MinecraftArguments != "" && len(l.Arguments.Game) == 0 {
		return strings.Fields(l.MinecraftArguments)
	}
	return flattenArgs(l.Arguments.Game)
}

// JvmArgs returns the jvm arguments defined in the manifest. Old
// manifests define none, so a minimal classpath setup is returned
// for those.
func (l *LaunchManifest) JvmArgs() []string {
	if len(l.Arguments.JVM) == 0 {
		return []string{
			"-Djava.library.path=${natives_directory}",
			"-cp",
			"${classpath}",
		}
	}
	return flattenArgs(l.Arguments.JVM)
}

func flattenArgs(args []Argument) []string {
	flat := make([]string, 0, len(args))

OUTER:
	for _, arg := range args {
		for _, rule := range arg.Rules {
			if !rule.Applies() {
				continue OUTER
			}
		}
		flat = append(flat, arg.Value...)
	}
	return flat
}

// Argument is one game or jvm argument. In the manifest it is either a
// plain string or an object with rules.
type Argument struct {
	Value stringSlice `json:"value"`
	Rules []Rule      `json:"rules"`
}

// UnmarshalJSON is needed because arguments sometimes are plain strings
func (a *Argument) UnmarshalJSON(data []byte) error {
	if data[0] == '"' {
		return a.Value.UnmarshalJSON(data)
	}

	// alias hides UnmarshalJSON to avoid recursion
	type plain Argument
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Argument(p)
	return nil
}
