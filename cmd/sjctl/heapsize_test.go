package main

import "testing"

func TestHeapsizeCommand(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		asJSON      bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "object document",
			src:         `{"a":1,"b":"hello","c":[1,2,3]}`,
			wantContain: []string{"Raw size:", "Heap size:"},
		},
		{
			name:   "json output",
			src:    `{"a":1}`,
			asJSON: true,
			wantContain: []string{
				`"heap_size"`,
				`"raw_size"`,
			},
		},
		{
			name:    "missing file",
			src:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = false
			verbose = false
			jsonOut = tt.asJSON

			var path string
			if tt.name == "missing file" {
				path = "/nonexistent/path.json"
			} else {
				path = writeTestJSON(t, "doc.json", tt.src)
			}

			output, err := captureOutput(t, func() error {
				return runHeapsize([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runHeapsize() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.asJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
