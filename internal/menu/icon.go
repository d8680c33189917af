package menu

// Icon is an identifier from a closed set the UI knows how to render.
// Unknown identifiers fall back to IconBox instead of breaking the menu.
type Icon string

const (
	IconHome              Icon = "home"
	IconArrowRightLeft    Icon = "arrow-right-left"
	IconPackagePlus       Icon = "package-plus"
	IconPackageMinus      Icon = "package-minus"
	IconTruck             Icon = "truck"
	IconClipboardList     Icon = "clipboard-list"
	IconPackageSearch     Icon = "package-search"
	IconDatabase          Icon = "database"
	IconLandmark          Icon = "landmark"
	IconBuilding          Icon = "building"
	IconWarehouse         Icon = "warehouse"
	IconMapPin            Icon = "map-pin"
	IconPackage           Icon = "package"
	IconHandshake         Icon = "handshake"
	IconSlidersHorizontal Icon = "sliders-horizontal"
	IconScale             Icon = "scale"
	IconSettings          Icon = "settings"
	IconUsers             Icon = "users"
	IconShieldCheck       Icon = "shield-check"
	IconScaling           Icon = "scaling"
	IconBox               Icon = "box" // fallback
)

var knownIcons = map[Icon]bool{
	IconHome: true, IconArrowRightLeft: true, IconPackagePlus: true,
	IconPackageMinus: true, IconTruck: true, IconClipboardList: true,
	IconPackageSearch: true, IconDatabase: true, IconLandmark: true,
	IconBuilding: true, IconWarehouse: true, IconMapPin: true,
	IconPackage: true, IconHandshake: true, IconSlidersHorizontal: true,
	IconScale: true, IconSettings: true, IconUsers: true,
	IconShieldCheck: true, IconScaling: true, IconBox: true,
}

// Valid reports whether the identifier belongs to the closed set.
func (i Icon) Valid() bool {
	return knownIcons[i]
}

// Lookup resolves an identifier, falling back to IconBox when unknown.
func Lookup(name string) Icon {
	if icon := Icon(name); icon.Valid() {
		return icon
	}
	return IconBox
}
