// Package permission maps the short permission tags used in project
// configurations to Android manifest permissions and hardware features.
package permission

import (
	"slices"
	"strings"
)

const (
	// Prefix is prepended to every platform permission name.
	Prefix = "android.permission."

	// FeaturePrefix is prepended to every hardware feature name.
	FeaturePrefix = "android.hardware."
)

// API levels at which the platform changed a permission model.
const (
	apiBackgroundLocation = 29
	apiBluetoothRuntime   = 31
	apiMediaPermissions   = 33
	apiLegacyStorageMax   = 28
)

// UsesPermission is one <uses-permission> element.
type UsesPermission struct {
	Name string
	// MaxSdkVersion is emitted as android:maxSdkVersion when non-zero.
	MaxSdkVersion int
}

// Resolution is the ordered, deduplicated outcome of resolving a tag list.
type Resolution struct {
	Permissions []UsesPermission
	Features    []string
}

// rule expands one known tag for a given target SDK.
type rule func(targetSdk int) ([]UsesPermission, []string)

func perms(names ...string) []UsesPermission {
	out := make([]UsesPermission, len(names))
	for i, n := range names {
		out[i] = UsesPermission{Name: Prefix + n}
	}
	return out
}

func features(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = FeaturePrefix + n
	}
	return out
}

func static(p []UsesPermission, f []string) rule {
	return func(int) ([]UsesPermission, []string) { return p, f }
}

var table = map[string]rule{
	"camera":     static(perms("CAMERA"), features("camera", "camera.autofocus")),
	"internet":   static(perms("INTERNET", "ACCESS_NETWORK_STATE"), nil),
	"microphone": static(perms("RECORD_AUDIO"), features("microphone")),
	"contacts":   static(perms("READ_CONTACTS", "WRITE_CONTACTS"), nil),
	"sms":        static(perms("SEND_SMS", "READ_SMS", "RECEIVE_SMS"), features("telephony")),
	"phone":      static(perms("CALL_PHONE", "READ_PHONE_STATE"), features("telephony")),
	"storage": func(sdk int) ([]UsesPermission, []string) {
		if sdk >= apiMediaPermissions {
			return perms("READ_MEDIA_IMAGES", "READ_MEDIA_VIDEO", "READ_MEDIA_AUDIO"), nil
		}
		return []UsesPermission{
			{Name: Prefix + "READ_EXTERNAL_STORAGE"},
			{Name: Prefix + "WRITE_EXTERNAL_STORAGE", MaxSdkVersion: apiLegacyStorageMax},
		}, nil
	},
	"location": func(sdk int) ([]UsesPermission, []string) {
		p := perms("ACCESS_FINE_LOCATION", "ACCESS_COARSE_LOCATION")
		if sdk >= apiBackgroundLocation {
			p = append(p, perms("ACCESS_BACKGROUND_LOCATION")...)
		}
		return p, features("location", "location.gps")
	},
	"notifications": func(sdk int) ([]UsesPermission, []string) {
		if sdk >= apiMediaPermissions {
			return perms("POST_NOTIFICATIONS"), nil
		}
		return nil, nil
	},
	"bluetooth": func(sdk int) ([]UsesPermission, []string) {
		if sdk >= apiBluetoothRuntime {
			return perms("BLUETOOTH_SCAN", "BLUETOOTH_CONNECT"), features("bluetooth")
		}
		return perms("BLUETOOTH", "BLUETOOTH_ADMIN"), features("bluetooth")
	},
}

// KnownTags returns the recognised tags in sorted order.
func KnownTags() []string {
	tags := make([]string, 0, len(table))
	for t := range table {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Resolve expands tags into manifest permissions and features for targetSdk.
// Unknown tags become android.permission.<TAG> with every character outside
// [A-Z0-9_] mapped to an underscore. Blank tags are skipped.
func Resolve(tags []string, targetSdk int) Resolution {
	var res Resolution
	seenPerm := make(map[string]bool)
	seenFeature := make(map[string]bool)

	for _, raw := range tags {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}

		var ps []UsesPermission
		var fs []string
		if r, ok := table[tag]; ok {
			ps, fs = r(targetSdk)
		} else {
			ps = []UsesPermission{{Name: Prefix + synthesize(tag)}}
		}

		for _, p := range ps {
			if !seenPerm[p.Name] {
				seenPerm[p.Name] = true
				res.Permissions = append(res.Permissions, p)
			}
		}
		for _, f := range fs {
			if !seenFeature[f] {
				seenFeature[f] = true
				res.Features = append(res.Features, f)
			}
		}
	}
	return res
}

// synthesize upper-cases tag and maps every rune outside [A-Z0-9_] to '_'.
func synthesize(tag string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, tag)
}
