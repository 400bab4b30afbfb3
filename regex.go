package promoter

import "regexp"

// modCore captures MAJOR, MINOR, PATCH of a canonical Go module version
// ("vX.Y.Z[-pre]").
var modCore = regexp.MustCompile(`^v(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)`)
