package cardmaker

// DefaultConfig returns the canonical card configuration. It references only
// built-in fonts and icons, so a default configuration renders every school
// and component entry without any asset files on disk. The geometry targets
// a poker-oversized 822x1122 canvas.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Classes: []string{
				"Bard",
				"Cleric",
				"Druid",
				"Paladin",
				"Ranger",
				"Sorcerer",
				"Warlock",
				"Wizard",
			},
			PreventLargeRuleText: true,
			OutputDirectory:      "output",
		},
		Template: TemplateConfig{
			Canvas: Size{W: 822, H: 1122},
			Title: TextBox{
				Box:     Box{X: 201, Y: 80, W: 416, H: 82},
				MaxSize: 44, MinSize: 18,
			},
			Rules: TextBox{
				Box:     Box{X: 92, Y: 610, W: 644, H: 432},
				MaxSize: 30, MinSize: 12,
			},
			Colors: TemplateColors{
				Black: "#000000",
				Grey:  "#BFBFBF",
			},
			Fonts: FontConfig{
				Title:      "builtin/fonts/title",
				Main:       "builtin/fonts/main",
				MainBold:   "builtin/fonts/main-bold",
				MainItalic: "builtin/fonts/main-italic",
			},
			Bars: BarsConfig{
				Top: Box{X: 127, Y: 75, W: 620, H: 91},
				Mid: Box{X: 73, Y: 516, W: 674, H: 77},
			},
			Icons: IconsConfig{
				School: SchoolIconConfig{CX: 127, CY: 127, Radius: 57},
				CastStrip: CastStripConfig{
					Point: Point{X: 97, Y: 402},
					Icon:  "builtin/icons/cast-strip.png",
				},
				Indicators: map[string]Point{
					"concentration": {X: 320, Y: 265},
					"verbal":        {X: 229, Y: 422},
					"somatic":       {X: 348, Y: 419},
					"material":      {X: 456, Y: 416},
					"ritual":        {X: 97, Y: 402},
				},
			},
			ClassList: ClassListConfig{
				Box:     Box{X: 602, Y: 178, W: 130, H: 334},
				MaxSize: 24, MinSize: 10,
				Marker: MarkerConfig{W: 8, HPct: 0.74, YPadPct: 0.07},
			},
			Metadata: MetadataConfig{
				Level: TextBox{
					Box:     Box{X: 649, Y: 97, W: 120, H: 48},
					MaxSize: 30, MinSize: 14,
				},
				Range: LabeledBox{
					Label: TextBox{Box: Box{X: 97, Y: 203, W: 275, H: 49}, MaxSize: 26, MinSize: 12},
					Value: TextBox{Box: Box{X: 378, Y: 205, W: 216, H: 45}, MaxSize: 26, MinSize: 12},
				},
				Duration: LabeledBox{
					Label: TextBox{Box: Box{X: 97, Y: 267, W: 275, H: 49}, MaxSize: 26, MinSize: 12},
					Value: TextBox{Box: Box{X: 378, Y: 269, W: 216, H: 45}, MaxSize: 26, MinSize: 12},
				},
				CastTime: LabeledBox{
					Label: TextBox{Box: Box{X: 97, Y: 332, W: 275, H: 49}, MaxSize: 26, MinSize: 12},
					Value: TextBox{Box: Box{X: 378, Y: 334, W: 216, H: 45}, MaxSize: 26, MinSize: 12},
				},
				MaterialCost: TextBox{
					Box:     Box{X: 505, Y: 398, W: 100, H: 36},
					MaxSize: 20, MinSize: 10,
				},
			},
			ContinuedMarker: "(continued)",
		},
		School: map[string]CategoryStyle{
			"abjuration": {
				BgColor: "#6DC3D3", FgColor: "#000000",
				Icon: "builtin/icons/school/abjuration.png",
			},
			"conjuration": {
				BgColor: "#59326C", FgColor: "#FFFFFF",
				Icon: "builtin/icons/school/conjuration.png",
			},
			"divination": {
				BgColor: "#D7CB42", FgColor: "#000000",
				Icon: "builtin/icons/school/divination.png",
			},
			"enchantment": {
				BgColor: "#B34485", FgColor: "#FFFFFF",
				Icon: "builtin/icons/school/enchantment.png",
			},
			"evocation": {
				BgColor: "#377C54", FgColor: "#FFFFFF",
				Icon: "builtin/icons/school/evocation.png",
			},
			"illusion": {
				BgColor: "#393F7D", FgColor: "#FFFFFF",
				Icon: "builtin/icons/school/illusion.png",
			},
			"necromancy": {
				BgColor: "#804539", FgColor: "#FFFFFF",
				Icon: "builtin/icons/school/necromancy.png",
			},
			"transmutation": {
				BgColor: "#7EBF5D", FgColor: "#000000",
				Icon: "builtin/icons/school/transmutation.png",
			},
		},
		Component: map[string]CategoryStyle{
			"concentration": {
				BgColor: "#E1E1E1", FgColor: "#282828",
				Icon: "builtin/icons/indicator/concentration.png",
			},
			"verbal": {
				BgColor: "#E1E1E1", FgColor: "#282828",
				Icon: "builtin/icons/indicator/verbal.png",
			},
			"somatic": {
				BgColor: "#E1E1E1", FgColor: "#282828",
				Icon: "builtin/icons/indicator/somatic.png",
			},
			"material": {
				BgColor: "#E1E1E1", FgColor: "#282828",
				Icon: "builtin/icons/indicator/material.png",
			},
			"ritual": {
				BgColor: "#E1E1E1", FgColor: "#282828",
				Icon: "builtin/icons/indicator/ritual.png",
			},
		},
	}
}
