package models

// VaultInfo is a named storage container with its aggregate counters. All
// counters are server-computed.
type VaultInfo struct {
	ID        int64  `mapstructure:"id"`
	Vault     string `mapstructure:"vault"`
	NoteCount int64  `mapstructure:"noteCount"`
	NoteSize  int64  `mapstructure:"noteSize"`
	FileCount int64  `mapstructure:"fileCount"`
	FileSize  int64  `mapstructure:"fileSize"`
	Size      int64  `mapstructure:"size"`

	Raw map[string]any `mapstructure:"-"`
}

func VaultInfoFromMap(d map[string]any) VaultInfo {
	var v VaultInfo
	decode(d, &v)
	v.Raw = rawCopy(d)
	return v
}
