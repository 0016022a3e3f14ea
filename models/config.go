package models

// WebGUIConfig is the configuration snapshot visible to any caller.
type WebGUIConfig struct {
	FontSet          string `mapstructure:"fontSet"`
	RegisterIsEnable bool   `mapstructure:"registerIsEnable"`
	AdminUID         int64  `mapstructure:"adminUid"`

	Raw map[string]any `mapstructure:"-"`
}

func WebGUIConfigFromMap(d map[string]any) WebGUIConfig {
	var c WebGUIConfig
	decode(d, &c)
	c.Raw = rawCopy(d)
	return c
}

// AdminConfig is the superset of WebGUIConfig visible to administrators.
// The duration-like fields (fileChunkSize, retention windows) are
// server-formatted strings and are passed through as-is.
type AdminConfig struct {
	FontSet                 string `mapstructure:"fontSet"`
	RegisterIsEnable        bool   `mapstructure:"registerIsEnable"`
	FileChunkSize           string `mapstructure:"fileChunkSize"`
	SoftDeleteRetentionTime string `mapstructure:"softDeleteRetentionTime"`
	UploadSessionTimeout    string `mapstructure:"uploadSessionTimeout"`
	HistoryKeepVersions     int    `mapstructure:"historyKeepVersions"`
	AdminUID                int64  `mapstructure:"adminUid"`

	Raw map[string]any `mapstructure:"-"`
}

func AdminConfigFromMap(d map[string]any) AdminConfig {
	var c AdminConfig
	decode(d, &c)
	c.Raw = rawCopy(d)
	return c
}
