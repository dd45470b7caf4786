package permission

import (
	"slices"
	"testing"
)

func names(r Resolution) []string {
	out := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		out[i] = p.Name
	}
	return out
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tags      []string
		targetSdk int
		wantPerms []string
		wantFeats []string
	}{
		{
			name:      "empty",
			tags:      nil,
			targetSdk: 34,
		},
		{
			name:      "internet and camera",
			tags:      []string{"internet", "camera"},
			targetSdk: 34,
			wantPerms: []string{
				"android.permission.INTERNET",
				"android.permission.ACCESS_NETWORK_STATE",
				"android.permission.CAMERA",
			},
			wantFeats: []string{"android.hardware.camera", "android.hardware.camera.autofocus"},
		},
		{
			name:      "case and whitespace insensitive",
			tags:      []string{" Camera ", "CAMERA"},
			targetSdk: 34,
			wantPerms: []string{"android.permission.CAMERA"},
			wantFeats: []string{"android.hardware.camera", "android.hardware.camera.autofocus"},
		},
		{
			name:      "storage on modern sdk",
			tags:      []string{"storage"},
			targetSdk: 33,
			wantPerms: []string{
				"android.permission.READ_MEDIA_IMAGES",
				"android.permission.READ_MEDIA_VIDEO",
				"android.permission.READ_MEDIA_AUDIO",
			},
		},
		{
			name:      "location below background level",
			tags:      []string{"location"},
			targetSdk: 28,
			wantPerms: []string{
				"android.permission.ACCESS_FINE_LOCATION",
				"android.permission.ACCESS_COARSE_LOCATION",
			},
			wantFeats: []string{"android.hardware.location", "android.hardware.location.gps"},
		},
		{
			name:      "location with background",
			tags:      []string{"location"},
			targetSdk: 29,
			wantPerms: []string{
				"android.permission.ACCESS_FINE_LOCATION",
				"android.permission.ACCESS_COARSE_LOCATION",
				"android.permission.ACCESS_BACKGROUND_LOCATION",
			},
			wantFeats: []string{"android.hardware.location", "android.hardware.location.gps"},
		},
		{
			name:      "notifications before 33",
			tags:      []string{"notifications"},
			targetSdk: 32,
		},
		{
			name:      "notifications on 33",
			tags:      []string{"notifications"},
			targetSdk: 33,
			wantPerms: []string{"android.permission.POST_NOTIFICATIONS"},
		},
		{
			name:      "legacy bluetooth",
			tags:      []string{"bluetooth"},
			targetSdk: 30,
			wantPerms: []string{"android.permission.BLUETOOTH", "android.permission.BLUETOOTH_ADMIN"},
			wantFeats: []string{"android.hardware.bluetooth"},
		},
		{
			name:      "runtime bluetooth",
			tags:      []string{"bluetooth"},
			targetSdk: 31,
			wantPerms: []string{"android.permission.BLUETOOTH_SCAN", "android.permission.BLUETOOTH_CONNECT"},
			wantFeats: []string{"android.hardware.bluetooth"},
		},
		{
			name:      "shared telephony feature deduplicated",
			tags:      []string{"sms", "phone"},
			targetSdk: 34,
			wantPerms: []string{
				"android.permission.SEND_SMS",
				"android.permission.READ_SMS",
				"android.permission.RECEIVE_SMS",
				"android.permission.CALL_PHONE",
				"android.permission.READ_PHONE_STATE",
			},
			wantFeats: []string{"android.hardware.telephony"},
		},
		{
			name:      "unknown tag synthesized",
			tags:      []string{"body sensors", "use-biometric", ""},
			targetSdk: 34,
			wantPerms: []string{"android.permission.BODY_SENSORS", "android.permission.USE_BIOMETRIC"},
		},
		{
			name:      "unknown tag with markup characters",
			tags:      []string{`read "x" & <y>`, "wifi.state"},
			targetSdk: 34,
			wantPerms: []string{"android.permission.READ__X____Y_", "android.permission.WIFI_STATE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(tt.tags, tt.targetSdk)
			if !slices.Equal(names(got), tt.wantPerms) {
				t.Errorf("permissions = %v, want %v", names(got), tt.wantPerms)
			}
			if !slices.Equal(got.Features, tt.wantFeats) {
				t.Errorf("features = %v, want %v", got.Features, tt.wantFeats)
			}
		})
	}
}

func TestResolveLegacyStorageMaxSdk(t *testing.T) {
	t.Parallel()

	got := Resolve([]string{"storage"}, 30)
	want := []UsesPermission{
		{Name: "android.permission.READ_EXTERNAL_STORAGE"},
		{Name: "android.permission.WRITE_EXTERNAL_STORAGE", MaxSdkVersion: 28},
	}
	if !slices.Equal(got.Permissions, want) {
		t.Errorf("Permissions = %+v, want %+v", got.Permissions, want)
	}
}

func TestKnownTagsSorted(t *testing.T) {
	t.Parallel()

	tags := KnownTags()
	if len(tags) != 10 {
		t.Errorf("len(KnownTags()) = %d, want 10", len(tags))
	}
	if !slices.IsSorted(tags) {
		t.Errorf("KnownTags() not sorted: %v", tags)
	}
}
