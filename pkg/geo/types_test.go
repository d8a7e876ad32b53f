package geo

import "testing"

func TestValidateCoords(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{
			name: "valid coordinates",
			lat:  48.8584,
			lon:  2.2945,
		},
		{
			name: "extremes are valid",
			lat:  -90,
			lon:  180,
		},
		{
			name:    "latitude too high",
			lat:     90.1,
			lon:     0,
			wantErr: true,
		},
		{
			name:    "latitude too low",
			lat:     -91,
			lon:     0,
			wantErr: true,
		},
		{
			name:    "longitude too high",
			lat:     0,
			lon:     180.5,
			wantErr: true,
		},
		{
			name:    "longitude too low",
			lat:     0,
			lon:     -181,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoords(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoords(%f, %f) error = %v, wantErr %v", tt.lat, tt.lon, err, tt.wantErr)
			}
		})
	}
}
