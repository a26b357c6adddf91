package scanner

// verbatimRemap rewrites known problem lines before any other processing.
// The entries are exact-match substitutions tied to specific upstream
// header content (typo fixes, markup escapes, separator removal); keep
// general-purpose logic out of here.
var verbatimRemap = map[string]string{
	"//  // is the planar centroid, which is simply the centroid of the ordinary": "// is the planar centroid, which is simply the centroid of the ordinary",

	"// ----------------": "// ",

	"//  (3) RobustCrossing(a,b,c,d) <= 0 if a==b or c==d": "//  (4) RobustCrossing(a,b,c,d) <= 0 if a==b or c==d",

	"//  (3) If exactly one of a,b equals one of c,d, then exactly one of": "//  (4) If exactly one of a,b equals one of c,d, then exactly one of",

	"// to be different than vertex(*next_vertex), so this will never result in": "// to be different than `vertex(*next_vertex)`, so this will never result in",

	"// Return true if lng_.lo() > lng_.hi(), i.e. the rectangle crosses": "// Return true if `lng_.lo() > lng_.hi()`, i.e. the rectangle crosses",
}
