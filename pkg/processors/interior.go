package processors

// interiorGridSize is the edge length of the fixed interior pattern grids
// below, tiled across a building's flood-filled floor cells: two fixed
// 23x23 character grids laid across each floor.
const interiorGridSize = 23

// interiorPatternLower and interiorPatternUpper are copied byte-for-byte
// from original_source/src/element_processing/subprocessor/buildings_interior.rs
// (INTERIOR1_LAYER1 and INTERIOR1_LAYER2): the ground-floor furniture
// layout, one layer above the floor and one layer above that. Only a
// subset of the original's letter codes are wired to catalog blocks in
// buildings.go (D=door, B=bed, S=bookshelf); every other letter (the
// original's chest/table/lamp/rug/cupboard/fireplace/numbered variants)
// is a furniture kind this catalog doesn't carry a distinct block for
// and is left as air, same as any unmatched cell.
var interiorPatternLower = [interiorGridSize]string{
	"1U WC   SSWBTTBW78    W",
	"2  WF   UUWBTTBW78   BW",
	"   WF     WBTTBWWWDWWWW",
	"WWDWL         AW      W",
	"               D      W",
	"        WWWWDWWWWDWW  D",
	"        WBBB  JW   BWWW",
	"WWWWDW  WTSST  WSS BWWW",
	"     W  WTTTT  WUU BW  ",
	"     W  DTTTT BW   BW  ",
	"L ALWW  WJUU  BWWDWWW  ",
	"WWWWWW  WWWWWDWW  WCCWW",
	"BB W           D  W  WW",
	"   D           D      D",
	" 6 W  WWWWWDWWDW      W",
	"U5 W  WCFF  W  WWDWW  W",
	"WWWW  W     WL WA BW  W",
	"B     D     W  W  BWJ W",
	"      W      W WU  WB D",
	"J  CBBWLF WF WLW78 WB W",
	"B  BWWWWW WA WWWWWWWC W",
	"B  BW   D WC  WWBBBBWDW",
	"WWDWC   WWWBTTBW      W",
}

var interiorPatternUpper = [interiorGridSize]string{
	" P W      WB  BW      W",
	"   W    PPWB  BW     BW",
	"   W      WB  BWWWDWWWW",
	"WWDW           W      W",
	"               D      W",
	"        WWWWDWWWWDWW  D",
	"        WBBB   W   BWWW",
	"WWWWDW  W      W   BWWW",
	"     W  W      WPP BW  ",
	"     W  D     BW   BW  ",
	"    WW  W PP  BWWDWWW  ",
	"WWWWWW  WWWWWDWW  WCCWW",
	"BB W           D  W  WW",
	"   D           D      D",
	"   W  WWWWWDWWDW      W",
	"P  W  WN    W  WWDWW  W",
	"WWWW  W     W  W  BW  W",
	"B     D     W  W  CW  W",
	"      W      W WP  WB D",
	"    BBW   W  WPW   WB W",
	"B  BWWWWW W  WWWWWWW  W",
	"B  BW   D WN  WWBBBBWDW",
	"WWDW    WWWB  BW      W",
}
