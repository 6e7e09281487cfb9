// Package cardmaker renders printable spell reference cards for tabletop
// games. A card is a fixed-layout raster image: a school-colored frame, a
// school icon, the spell's casting parameters, component indicators, a class
// sidebar, and the rules text shrunk to fit the body box.
//
// The typical flow is to load a configuration, build a Composer, and call
// Compose once per spell:
//
//	cfg, err := cardmaker.LoadConfigFile("card-config.yaml")
//	if err != nil {
//		return err
//	}
//	composer, err := cardmaker.New(cfg)
//	if err != nil {
//		return err
//	}
//	images, err := composer.Compose(spell)
//
// Compose returns one image per card; spells whose rules text cannot fit a
// single card at the minimum font size continue onto additional cards.
//
// Fonts and icons resolve through an asset chain that checks a user
// directory before falling back to assets compiled into the binary, so the
// default configuration renders with no files on disk. Missing assets and
// unknown categories are errors, never silent substitutions.
package cardmaker
