package quest

import (
	"testing"
	"testing/fstest"
)

func TestLoadQuestFile(t *testing.T) {
	fsys := fstest.MapFS{
		"quests/tour.qst": &fstest.MapFile{Data: []byte(`
// a short tour
name "Grand Tour"
author mottasm
version "1.2"
description "Two little levels"
level "levels/ramp.tmx"
level "levels/loop.tmx"
hidden true
`)},
	}

	q, err := Load(fsys, "quests/tour.qst")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if q.Name != "Grand Tour" {
		t.Errorf("name = %q", q.Name)
	}
	if q.Author != "mottasm" {
		t.Errorf("author = %q, bare values are allowed", q.Author)
	}
	if q.Version != "1.2" || q.Description != "Two little levels" {
		t.Errorf("metadata = %q / %q", q.Version, q.Description)
	}
	if q.LevelCount() != 2 || q.Levels[0] != "levels/ramp.tmx" || q.Levels[1] != "levels/loop.tmx" {
		t.Errorf("levels = %v", q.Levels)
	}
}

func TestLoadImplicitSingleLevelQuest(t *testing.T) {
	q, err := Load(fstest.MapFS{}, "levels/ramp.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if q.LevelCount() != 1 || q.Levels[0] != "levels/ramp.tmx" {
		t.Errorf("levels = %v, want the path itself", q.Levels)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "whatever.png"); err == nil {
		t.Fatalf("want error for a non-quest file")
	}
}

func TestLoadMissingQuest(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.qst"); err == nil {
		t.Fatalf("want error for a missing quest file")
	}
}

func TestLoadBadStatement(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.qst": &fstest.MapFile{Data: []byte("name \"oops\nlevel \"a.tmx\"\n")},
	}
	if _, err := Load(fsys, "bad.qst"); err == nil {
		t.Fatalf("want error for an unterminated string")
	}

	fsys = fstest.MapFS{
		"bad.qst": &fstest.MapFile{Data: []byte("level\n")},
	}
	if _, err := Load(fsys, "bad.qst"); err == nil {
		t.Fatalf("want error for a level without a path")
	}
}
