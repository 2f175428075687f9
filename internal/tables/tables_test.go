// internal/tables/tables_test.go
package tables

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadSource(t *testing.T) {
	path := write(t, "source.csv",
		"Label,Well,Concentration,Volume\n"+
			"A,A1,100,40\n"+
			"A,A2,10,40\n"+
			"B,\"B1,B2\",50,\"40,38\"\n"+
			"Water,C1,1,40\n")
	entries, err := ReadSource(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}
	b := entries[2]
	if !reflect.DeepEqual(b.Wells, []string{"B1", "B2"}) {
		t.Fatalf("B wells = %v", b.Wells)
	}
	if !reflect.DeepEqual(b.Volumes, []float64{40, 38}) {
		t.Fatalf("B volumes = %v", b.Volumes)
	}
}

func TestReadSourceSingleVolumeManyWells(t *testing.T) {
	path := write(t, "source.csv",
		"Label,Well,Concentration,Volume\n"+
			"B,\"B1,B2,B3\",50,40\n")
	entries, err := ReadSource(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(entries[0].Volumes, []float64{40, 40, 40}) {
		t.Fatalf("volumes = %v, want broadcast", entries[0].Volumes)
	}
}

func TestReadSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "missing column",
			data: "Label,Well,Concentration\nA,A1,100\n",
			want: "missing",
		},
		{
			name: "bad concentration",
			data: "Label,Well,Concentration,Volume\nA,A1,lots,40\n",
			want: "bad concentration",
		},
		{
			name: "zero concentration",
			data: "Label,Well,Concentration,Volume\nA,A1,0,40\n",
			want: "bad concentration",
		},
		{
			name: "well/volume count mismatch",
			data: "Label,Well,Concentration,Volume\nA,\"A1,A2\",100,\"40,40,40\"\n",
			want: "2 wells but 3 volumes",
		},
		{
			name: "no rows",
			data: "Label,Well,Concentration,Volume\n",
			want: "no inventory rows",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadSource(write(t, "source.csv", tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestReadRecipe(t *testing.T) {
	path := write(t, "recipe.csv",
		"Label,A,B\n"+
			"R1,5,3\n"+
			"R2,1.3,\n")
	recipe, err := ReadRecipe(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(recipe.Reactions, []string{"R1", "R2"}) {
		t.Fatalf("reactions = %v", recipe.Reactions)
	}
	if !reflect.DeepEqual(recipe.Reagents, []string{"A", "B"}) {
		t.Fatalf("reagents = %v", recipe.Reagents)
	}
	if got := recipe.Target("R1", "B"); got != 3 {
		t.Fatalf("R1/B = %v", got)
	}
	if got := recipe.Target("R2", "B"); got != 0 {
		t.Fatalf("blank cell should read as 0, got %v", got)
	}
}

func TestReadRecipeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "negative concentration", data: "Label,A\nR1,-1\n"},
		{name: "duplicate reaction", data: "Label,A\nR1,1\nR1,2\n"},
		{name: "header only", data: "Label,A\n"},
		{name: "non-numeric cell", data: "Label,A\nR1,much\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadRecipe(write(t, "recipe.csv", tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadLayout(t *testing.T) {
	path := write(t, "layout.csv",
		",1,2,3\n"+
			"A,R1,,R2\n"+
			"B,R2,R1,\n")
	g, err := ReadLayout(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	asg := g.Assignments()
	if len(asg) != 2 {
		t.Fatalf("assignments = %+v", asg)
	}
	if asg[0].Reaction != "R1" || !reflect.DeepEqual(asg[0].Wells, []string{"A1", "B2"}) {
		t.Fatalf("R1 assignment = %+v", asg[0])
	}
}

func TestReadLayoutRagged(t *testing.T) {
	// encoding/csv itself rejects ragged records.
	path := write(t, "layout.csv", ",1,2\nA,R1\n")
	if _, err := ReadLayout(path); err == nil {
		t.Fatal("expected error for ragged layout")
	}
}
