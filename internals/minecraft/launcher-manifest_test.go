package minecraft

import (
	"encoding/json"
	"testing"
)

func TestStringSlice(t *testing.T) {
	var s stringSlice
	err := json.Unmarshal([]byte(`["a", "b"]`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "a b" {
		t.Fatalf("Expected 'a b', got '%s'", s.String())
	}

	err = json.Unmarshal([]byte(`"a b"`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "a b" {
		t.Fatalf("Expected 'a b', got '%s'", s.String())
	}
}

func TestArgumentUnmarshal(t *testing.T) {
	raw := `["--username", {"rules": [{"action": "allow", "features": {"is_demo_user": true}}], "value": "--demo"}]`

	var args []Argument
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		t.Fatal(err)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(args))
	}
	if args[0].Value.String() != "--username" {
		t.Errorf("expected '--username', got '%s'", args[0].Value.String())
	}
	if len(args[1].Rules) != 1 {
		t.Errorf("expected 1 rule on the demo arg, got %d", len(args[1].Rules))
	}

	// the demo arg has a feature rule, so it never applies here
	flat := flattenArgs(args)
	if len(flat) != 1 || flat[0] != "--username" {
		t.Errorf("expected only '--username' to survive, got %v", flat)
	}
}

func TestLaunchManifestMergeWith(t *testing.T) {
	child := &LaunchManifest{
		ID:           "1.20.1-fabric-0.14.21",
		InheritsFrom: "1.20.1",
		MainClass:    "net.fabricmc.loader.impl.launch.knot.KnotClient",
		Libraries: Libraries{
			{Name: "net.fabricmc:fabric-loader:0.14.21"},
		},
	}
	parent := &LaunchManifest{
		ID:        "1.20.1",
		MainClass: "net.minecraft.client.main.Main",
		Assets:    "5",
		Libraries: Libraries{
			{Name: "com.mojang:brigadier:1.1.8"},
		},
	}
	parent.JavaVersion.MajorVersion = 17

	child.MergeWith(parent)

	if child.MainClass != "net.fabricmc.loader.impl.launch.knot.KnotClient" {
		t.Error("child mainClass must win the merge")
	}
	if child.Assets != "5" {
		t.Error("missing assets id should be taken from the parent")
	}
	if child.JavaVersion.MajorVersion != 17 {
		t.Error("missing javaVersion should be taken from the parent")
	}
	if len(child.Libraries) != 2 {
		t.Errorf("expected merged libraries, got %d", len(child.Libraries))
	}
	if child.MinecraftVersion() != "1.20.1" {
		t.Errorf("expected base version 1.20.1, got %s", child.MinecraftVersion())
	}
	if child.JarName() != "1.20.1.jar" {
		t.Errorf("unexpected jar name %s", child.JarName())
	}
}

func TestLibFilepath(t *testing.T) {
	lib := Lib{Name: "net.fabricmc:fabric-loader:0.14.21"}
	want := "net/fabricmc/fabric-loader/0.14.21/fabric-loader-0.14.21.jar"
	if got := lib.Filepath(); got != want {
		t.Errorf("Lib.Filepath() = %q, want %q", got, want)
	}

	url := lib.DownloadURL()
	if url != "https://libraries.minecraft.net/"+want {
		t.Errorf("unexpected download url %q", url)
	}
}
