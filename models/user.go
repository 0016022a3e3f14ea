package models

// UserInfo identifies an account. The Token field is only populated by the
// register and login endpoints; the client stores it for later requests.
type UserInfo struct {
	UID       int64  `mapstructure:"uid"`
	Email     string `mapstructure:"email"`
	Username  string `mapstructure:"username"`
	Token     string `mapstructure:"token"`
	Avatar    string `mapstructure:"avatar"`
	UpdatedAt string `mapstructure:"updatedAt"`
	CreatedAt string `mapstructure:"createdAt"`

	Raw map[string]any `mapstructure:"-"`
}

func UserInfoFromMap(d map[string]any) UserInfo {
	var u UserInfo
	decode(d, &u)
	u.Raw = rawCopy(d)
	return u
}

// VersionInfo reports the server build. Read-only; the client never mutates
// or re-submits it.
type VersionInfo struct {
	Version   string `mapstructure:"version"`
	GitTag    string `mapstructure:"gitTag"`
	BuildTime string `mapstructure:"buildTime"`

	Raw map[string]any `mapstructure:"-"`
}

func VersionInfoFromMap(d map[string]any) VersionInfo {
	var v VersionInfo
	decode(d, &v)
	v.Raw = rawCopy(d)
	return v
}
