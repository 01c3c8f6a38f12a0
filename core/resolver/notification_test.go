package resolver

import "testing"

func TestNotificationURL(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		want    string
	}{
		{
			name: "custom wins",
			payload: map[string]interface{}{
				"custom":         map[string]interface{}{"a": map[string]interface{}{"url": "https://a"}},
				"url":            "https://b",
				"additionalData": map[string]interface{}{"url": "https://c"},
			},
			want: "https://a",
		},
		{
			name: "empty custom falls through to url",
			payload: map[string]interface{}{
				"custom": map[string]interface{}{"a": map[string]interface{}{"url": ""}},
				"url":    "https://b",
			},
			want: "https://b",
		},
		{
			name: "additional data last",
			payload: map[string]interface{}{
				"url":            42,
				"additionalData": map[string]interface{}{"url": "https://c"},
			},
			want: "https://c",
		},
		{
			name:    "custom of wrong shape",
			payload: map[string]interface{}{"custom": "x"},
			want:    "",
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NotificationURL(tt.payload); got != tt.want {
				t.Errorf("NotificationURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
