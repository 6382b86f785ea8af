package playstation_cnf

import "testing"

func TestExecFileName(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "US release with CRLF",
			data: "BOOT = cdrom:\\EXE\\SCUS_946.08;1\r\n",
			want: "SCUS_946.08",
		},
		{
			name: "Japanese release without version suffix",
			data: "BOOT = cdrom:\\EXE\\SCPS_100.28\n",
			want: "SCPS_100.28",
		},
		{
			name: "extra whitespace around equals",
			data: "BOOT   =   cdrom:\\EXE\\SCES_003.21;1\n",
			want: "SCES_003.21",
		},
		{
			name: "trailing lines after boot line are ignored",
			data: "BOOT = cdrom:\\EXE\\SCES_011.72;1\r\nTCB = 4\r\n",
			want: "SCES_011.72",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecFileName([]byte(tt.data))
			if err != nil {
				t.Fatalf("ExecFileName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExecFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecFileNameRejectsNonWildArmsBootLine(t *testing.T) {
	_, err := ExecFileName([]byte("BOOT2 = cdrom0:\\SLUS_123.45;1\r\n"))
	if err == nil {
		t.Fatal("expected error for non-Wild-Arms BOOT2 line")
	}
}
