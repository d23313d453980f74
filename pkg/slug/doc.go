// Package slug turns arbitrary titles into ASCII, URL- and filename-safe
// slugs.
//
// Text is decomposed with Unicode NFD, combining marks are dropped and a few
// letters without a decomposition (ł, ß, ø, æ, đ) are transliterated. Every
// run of other characters becomes one separator:
//
//	slug.Make("Espinacz nr 4/2026")         // "espinacz-nr-4-2026"
//	slug.Make("Infrastruktura dla lotniska w Łasku") // "infrastruktura-dla-lotniska-w-lasku"
//	slug.Make("Nowy artykuł", slug.Separator("_"))   // "nowy_artykul"
//	slug.Make("Bardzo długi tytuł", slug.MaxLength(10)) // "bardzo"
package slug
