package types_test

import (
	"testing"

	"nodekey/internal/domain/types"
)

func TestSessionState_OverrideKeepsFirstBackup(t *testing.T) {
	orig := &types.KeyPair{Pub: "X", Sec: "Y"}
	s := types.NewSessionState(orig)
	if s.Overridden() {
		t.Fatal("fresh state reports an override")
	}

	s.Override(&types.KeyPair{Pub: "A", Sec: "B"})
	s.Override(&types.KeyPair{Pub: "C", Sec: "D"})
	if !s.Overridden() {
		t.Fatal("override not recorded")
	}
	if !s.Effective.Equal(&types.KeyPair{Pub: "C", Sec: "D"}) {
		t.Fatalf("effective = %+v", s.Effective)
	}
	if !s.Persistable().Equal(orig) {
		t.Fatalf("persistable = %+v, want original", s.Persistable())
	}

	s.Restore()
	if s.Overridden() || !s.Effective.Equal(orig) {
		t.Fatalf("restore failed: %+v", s.Effective)
	}
}

func TestSessionState_BackupIsACopy(t *testing.T) {
	orig := &types.KeyPair{Pub: "X", Sec: "Y"}
	s := types.NewSessionState(orig)
	s.Override(&types.KeyPair{Pub: "A", Sec: "B"})
	orig.Pub = "mutated"
	s.Restore()
	if s.Effective.Pub != "X" {
		t.Fatalf("backup aliases the original: %+v", s.Effective)
	}
}

func TestSessionState_RestoreWithoutOverride(t *testing.T) {
	kp := &types.KeyPair{Pub: "X", Sec: "Y"}
	s := types.NewSessionState(kp)
	s.Restore()
	if s.Effective != kp {
		t.Fatal("restore without override changed the effective keypair")
	}
}

func TestKeyPair_Valid(t *testing.T) {
	var nilPair *types.KeyPair
	cases := []struct {
		name string
		kp   *types.KeyPair
		want bool
	}{
		{"nil", nilPair, false},
		{"empty", &types.KeyPair{}, false},
		{"pub only", &types.KeyPair{Pub: "X"}, false},
		{"sec only", &types.KeyPair{Sec: "Y"}, false},
		{"both", &types.KeyPair{Pub: "X", Sec: "Y"}, true},
	}
	for _, tc := range cases {
		if got := tc.kp.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
