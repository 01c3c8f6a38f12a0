package resolver

// notificationPaths are checked in order; the first non-empty string wins.
var notificationPaths = [][]string{
	{"custom", "a", "url"},
	{"url"},
	{"additionalData", "url"},
}

// NotificationURL returns the link carried by a push payload, or "".
func NotificationURL(payload map[string]interface{}) string {
	for _, path := range notificationPaths {
		if s := lookup(payload, path); s != "" {
			return s
		}
	}
	return ""
}

func lookup(m map[string]interface{}, path []string) string {
	var cur interface{} = m
	for _, key := range path {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur = obj[key]
	}
	s, _ := cur.(string)
	return s
}
