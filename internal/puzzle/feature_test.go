package puzzle

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

var allFeatures = []Feature{Wall, Floor, Object, Target, TargetX}

func TestFeature_Predicates(t *testing.T) {
	tests := map[string]struct {
		feature       Feature
		expWalkable   bool
		expShiftable  bool
		expTargetable bool
	}{
		"wall":     {feature: Wall},
		"floor":    {feature: Floor, expWalkable: true, expTargetable: true},
		"object":   {feature: Object, expShiftable: true},
		"target":   {feature: Target, expWalkable: true, expTargetable: true},
		"target-x": {feature: TargetX, expShiftable: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "walkable", tt.feature.Walkable(), tt.expWalkable)
			testutil.AssertEqual(t, "shiftable", tt.feature.Shiftable(), tt.expShiftable)
			testutil.AssertEqual(t, "targetable", tt.feature.Targetable(), tt.expTargetable)
		})
	}
}

func TestCombine(t *testing.T) {
	tests := map[string]struct {
		previous Feature
		incoming Feature
		exp      Feature
		expDelta int
	}{
		"object onto target":     {previous: Target, incoming: Object, exp: TargetX, expDelta: -1},
		"target-x onto target":   {previous: Target, incoming: TargetX, exp: TargetX},
		"floor onto target":      {previous: Target, incoming: Floor, exp: Target},
		"wall onto target":       {previous: Target, incoming: Wall, exp: Target},
		"object onto target-x":   {previous: TargetX, incoming: Object, exp: TargetX},
		"target-x onto target-x": {previous: TargetX, incoming: TargetX, exp: TargetX},
		"floor onto target-x":    {previous: TargetX, incoming: Floor, exp: Target, expDelta: 1},
		"target onto target-x":   {previous: TargetX, incoming: Target, exp: Target, expDelta: 1},
		"object onto floor":      {previous: Floor, incoming: Object, exp: Object},
		"target-x onto floor":    {previous: Floor, incoming: TargetX, exp: TargetX},
		"floor onto object":      {previous: Object, incoming: Floor, exp: Floor},
		"target onto wall":       {previous: Wall, incoming: Target, exp: Target},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, delta := Combine(tt.previous, tt.incoming)
			testutil.AssertEqual(t, "result", got, tt.exp)
			testutil.AssertEqual(t, "delta", delta, tt.expDelta)
		})
	}
}

func TestCombine_Total(t *testing.T) {
	for _, prev := range allFeatures {
		for _, in := range allFeatures {
			got, delta := Combine(prev, in)
			if delta < -1 || delta > 1 {
				t.Errorf("Combine(%s, %s) delta %d out of range", prev, in, delta)
			}
			if prev != Target && prev != TargetX && got != in {
				t.Errorf("Combine(%s, %s) = %s, expected incoming to win", prev, in, got)
			}
			if (prev == Target || prev == TargetX) && got != Target && got != TargetX {
				t.Errorf("Combine(%s, %s) = %s, target lost", prev, in, got)
			}
		}
	}
}

func TestFeatureFromRune(t *testing.T) {
	tests := map[string]struct {
		r         rune
		exp       Feature
		expPlayer bool
		expErr    string
	}{
		"wall":             {r: '#', exp: Wall},
		"floor space":      {r: ' ', exp: Floor},
		"floor dash":       {r: '-', exp: Floor},
		"object":           {r: '$', exp: Object},
		"target":           {r: '.', exp: Target},
		"object on target": {r: '*', exp: TargetX},
		"player":           {r: '@', exp: Floor, expPlayer: true},
		"player on target": {r: '+', exp: Target, expPlayer: true},
		"unknown":          {r: 'x', expErr: "unknown level character"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, player, err := FeatureFromRune(tt.r)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "feature", f, tt.exp)
			testutil.AssertEqual(t, "player", player, tt.expPlayer)
		})
	}
}

func TestFeature_RuneRoundTrip(t *testing.T) {
	for _, f := range allFeatures {
		got, _, err := FeatureFromRune(f.Rune())
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		testutil.AssertEqual(t, f.String(), got, f)
	}
}
