package vault

import "fmt"

// ModuleKind identifies one of the fixed challenge module kinds a vault
// can be protected with.
type ModuleKind int

const (
	KindUnspecified ModuleKind = iota
	KindPinTumbler
	KindCombinationDial
	KindKeypadCode
	KindTimeLock
	KindDeadbolt
	KindMagneticSeal
	KindGlassRelocker
	KindDualControl
	KindPuzzleBox
	KindCircuitMaze
	KindLaserGrid
	KindPressurePlate
	KindMotionSensor
	KindThermalSensor
	KindSeismicSensor
	KindSoundAlarm
	KindTripwire
	KindCameraSweep
	KindGuardPatrol
	KindGuardDog
	KindFingerprintScan
	KindRetinaScan
	KindVoiceLock
	KindFaceScan
	KindReinforcedDoor
	KindBlastDoor
	KindElectricFence
	KindSmokeScreen
	KindDecoyVault
	KindAcidTrap
	KindCagedKeypad
	KindFirewall
	KindEncryptionKey
	KindSignalJammer
	KindPasswordVault
)

// kindSlugs maps each kind to its stable machine-readable slug. The slug is
// the identifier used in tuning files and loadout files.
var kindSlugs = map[ModuleKind]string{
	KindPinTumbler:      "pin_tumbler",
	KindCombinationDial: "combination_dial",
	KindKeypadCode:      "keypad_code",
	KindTimeLock:        "time_lock",
	KindDeadbolt:        "deadbolt",
	KindMagneticSeal:    "magnetic_seal",
	KindGlassRelocker:   "glass_relocker",
	KindDualControl:     "dual_control",
	KindPuzzleBox:       "puzzle_box",
	KindCircuitMaze:     "circuit_maze",
	KindLaserGrid:       "laser_grid",
	KindPressurePlate:   "pressure_plate",
	KindMotionSensor:    "motion_sensor",
	KindThermalSensor:   "thermal_sensor",
	KindSeismicSensor:   "seismic_sensor",
	KindSoundAlarm:      "sound_alarm",
	KindTripwire:        "tripwire",
	KindCameraSweep:     "camera_sweep",
	KindGuardPatrol:     "guard_patrol",
	KindGuardDog:        "guard_dog",
	KindFingerprintScan: "fingerprint_scan",
	KindRetinaScan:      "retina_scan",
	KindVoiceLock:       "voice_lock",
	KindFaceScan:        "face_scan",
	KindReinforcedDoor:  "reinforced_door",
	KindBlastDoor:       "blast_door",
	KindElectricFence:   "electric_fence",
	KindSmokeScreen:     "smoke_screen",
	KindDecoyVault:      "decoy_vault",
	KindAcidTrap:        "acid_trap",
	KindCagedKeypad:     "caged_keypad",
	KindFirewall:        "firewall",
	KindEncryptionKey:   "encryption_key",
	KindSignalJammer:    "signal_jammer",
	KindPasswordVault:   "password_vault",
}

// String returns the stable slug for the kind.
func (k ModuleKind) String() string {
	if slug, ok := kindSlugs[k]; ok {
		return slug
	}
	return "unspecified"
}

// ParseModuleKind resolves a slug back to its ModuleKind.
func ParseModuleKind(slug string) (ModuleKind, error) {
	for kind, s := range kindSlugs {
		if s == slug {
			return kind, nil
		}
	}
	return KindUnspecified, fmt.Errorf("%w: %q", ErrUnknownKind, slug)
}

// Kinds returns every challenge kind in declaration order.
func Kinds() []ModuleKind {
	kinds := make([]ModuleKind, 0, len(kindSlugs))
	for kind := KindPinTumbler; kind <= KindPasswordVault; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// ModuleInfo holds the fixed per-kind metadata: the base weight used by the
// scorer plus the display strings shown in the loadout editor.
type ModuleInfo struct {
	Weight      float64
	Name        string
	Description string
}

// Catalog maps every challenge kind to its metadata. Weights are the tuning
// surface for how much each kind contributes to a vault's security score.
type Catalog map[ModuleKind]ModuleInfo

// DefaultCatalog returns the stock catalog. Callers may mutate their copy;
// the defaults are never shared.
func DefaultCatalog() Catalog {
	catalog := make(Catalog, len(defaultCatalog))
	for kind, info := range defaultCatalog {
		catalog[kind] = info
	}
	return catalog
}

// Info returns the metadata for a kind.
func (c Catalog) Info(kind ModuleKind) (ModuleInfo, error) {
	info, ok := c[kind]
	if !ok {
		return ModuleInfo{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return info, nil
}

// MaxWeight returns the heaviest weight in the catalog. The scorer uses it
// to pin the normalization ceiling.
func (c Catalog) MaxWeight() float64 {
	max := 0.0
	for _, info := range c {
		if info.Weight > max {
			max = info.Weight
		}
	}
	return max
}

// Validate checks that every weight in the catalog is positive.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for kind, info := range c {
		if info.Weight <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidWeight, kind)
		}
	}
	return nil
}

var defaultCatalog = Catalog{
	KindPinTumbler:      {Weight: 0.6, Name: "Pin Tumbler Lock", Description: "A classic cylinder lock. Picks open with patience."},
	KindCombinationDial: {Weight: 0.8, Name: "Combination Dial", Description: "Three-number dial. Listen for the clicks."},
	KindKeypadCode:      {Weight: 0.7, Name: "Keypad Code", Description: "Worn keys betray the digits in play."},
	KindTimeLock:        {Weight: 1.3, Name: "Time Lock", Description: "Refuses to open outside its set window."},
	KindDeadbolt:        {Weight: 0.6, Name: "Deadbolt", Description: "Heavy sliding bolt. Brute force or bypass."},
	KindMagneticSeal:    {Weight: 1.0, Name: "Magnetic Seal", Description: "Electromagnet holds the door until power drops."},
	KindGlassRelocker:   {Weight: 1.4, Name: "Glass Relocker", Description: "Shatter the plate and the vault locks itself forever."},
	KindDualControl:     {Weight: 1.2, Name: "Dual Control", Description: "Two keys, two holders, one headache."},
	KindPuzzleBox:       {Weight: 0.9, Name: "Puzzle Box", Description: "Interlocking panels hide the release."},
	KindCircuitMaze:     {Weight: 0.9, Name: "Circuit Maze", Description: "Trace the live wire without grounding it."},
	KindLaserGrid:       {Weight: 1.1, Name: "Laser Grid", Description: "A lattice of beams sweeps the approach."},
	KindPressurePlate:   {Weight: 0.8, Name: "Pressure Plate", Description: "Step lightly. The floor is counting grams."},
	KindMotionSensor:    {Weight: 0.9, Name: "Motion Sensor", Description: "Movement above a crawl trips the alarm."},
	KindThermalSensor:   {Weight: 1.0, Name: "Thermal Sensor", Description: "Body heat reads like a flare."},
	KindSeismicSensor:   {Weight: 1.2, Name: "Seismic Sensor", Description: "Drills and hammers register as earthquakes."},
	KindSoundAlarm:      {Weight: 0.7, Name: "Sound Alarm", Description: "Anything louder than a whisper wakes it."},
	KindTripwire:        {Weight: 0.6, Name: "Tripwire", Description: "Old-fashioned and still effective."},
	KindCameraSweep:     {Weight: 0.8, Name: "Camera Sweep", Description: "Pan-tilt cameras with a predictable rhythm."},
	KindGuardPatrol:     {Weight: 1.1, Name: "Guard Patrol", Description: "A route, a schedule, and a flashlight."},
	KindGuardDog:        {Weight: 1.0, Name: "Guard Dog", Description: "Bribeable with steak. Sometimes."},
	KindFingerprintScan: {Weight: 1.1, Name: "Fingerprint Scanner", Description: "Only registered prints open the inner door."},
	KindRetinaScan:      {Weight: 1.4, Name: "Retina Scanner", Description: "The eye of the owner or nothing."},
	KindVoiceLock:       {Weight: 1.0, Name: "Voice Lock", Description: "Passphrase in the owner's own voice."},
	KindFaceScan:        {Weight: 1.2, Name: "Face Scanner", Description: "Masks fool it less often than you'd hope."},
	KindReinforcedDoor:  {Weight: 1.0, Name: "Reinforced Door", Description: "Steel plate over steel frame."},
	KindBlastDoor:       {Weight: 1.6, Name: "Blast Door", Description: "Rated against shaped charges. Good luck."},
	KindElectricFence:   {Weight: 0.9, Name: "Electric Fence", Description: "The hum tells you it's live."},
	KindSmokeScreen:     {Weight: 0.8, Name: "Smoke Screen", Description: "Zero visibility inside thirty seconds."},
	KindDecoyVault:      {Weight: 1.1, Name: "Decoy Vault", Description: "The real one is behind the fake one."},
	KindAcidTrap:        {Weight: 1.3, Name: "Acid Trap", Description: "Force the wrong panel and the contents dissolve."},
	KindCagedKeypad:     {Weight: 0.9, Name: "Caged Keypad", Description: "The keypad sits behind its own locked cage."},
	KindFirewall:        {Weight: 1.0, Name: "Firewall", Description: "The digital ledger rejects unsigned access."},
	KindEncryptionKey:   {Weight: 1.3, Name: "Encryption Key", Description: "Contents are ciphertext without the key."},
	KindSignalJammer:    {Weight: 0.8, Name: "Signal Jammer", Description: "Your tools lose their uplink at the door."},
	KindPasswordVault:   {Weight: 1.1, Name: "Password Vault", Description: "A vault inside the vault, keyed by passphrase."},
}
