package booking

// Platform identifies where a booking was sourced from.
type Platform string

const (
	PlatformPlayo     Platform = "PlayO"
	PlatformHuddle    Platform = "Huddle"
	PlatformKheloMore Platform = "KheloMore"
	PlatformOffline   Platform = "Offline"
)

// DefaultPlatform is preselected on the new-booking form.
const DefaultPlatform = PlatformPlayo

func Platforms() []Platform {
	return []Platform{PlatformPlayo, PlatformHuddle, PlatformKheloMore, PlatformOffline}
}

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformPlayo, PlatformHuddle, PlatformKheloMore, PlatformOffline:
		return true
	default:
		return false
	}
}
