package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    config
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  config{},
		},
		{
			name:  "flat",
			input: "marker: \"#N/A\"\nmax-depth: 64\nlog-pretty: false\n",
			want: config{
				"marker":     "#N/A",
				"max-depth":  "64",
				"log-pretty": false,
			},
		},
		{
			name:  "underscores",
			input: "max_depth: 8\nlog_level: debug\n",
			want:  config{"max-depth": "8", "log-level": "debug"},
		},
		{
			name:  "nested",
			input: "log:\n  level: trace\n  time_layout: none\n",
			want:  config{"log-level": "trace", "log-time-layout": "none"},
		},
		{
			name:  "sequence",
			input: "modes: [cpu, 2]\n",
			want:  config{"modes": "cpu,2"},
		},
		{
			name:    "malformed",
			input:   "marker: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("resolve() succeeded, want error")
				}

				return
			}

			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, r); diff != "" {
				t.Fatalf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_AppliesToFlags(t *testing.T) {
	var cli struct {
		Marker   string `default:"#ERR"`
		MaxDepth int    `default:"4096"`
		Pretty   bool   `default:"true" negatable:""`
	}

	r, err := resolve(strings.NewReader("marker: x\nmax_depth: 12\npretty: false\n"))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--marker=y"}); err != nil {
		t.Fatal(err)
	}

	if cli.Marker != "y" {
		t.Errorf("Marker = %q, want command line value %q", cli.Marker, "y")
	}

	if cli.MaxDepth != 12 {
		t.Errorf("MaxDepth = %d, want 12", cli.MaxDepth)
	}

	if cli.Pretty {
		t.Error("Pretty = true, want false from config")
	}
}
