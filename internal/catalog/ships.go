package catalog

import (
	"ship-editor/pkg/colorutil"
	"ship-editor/pkg/geometry"
)

// pts builds a vertex list from flat x,y pairs in relative coordinates.
func pts(xy ...float64) []geometry.Point2D {
	if len(xy)%2 != 0 {
		panic("catalog: odd coordinate count")
	}
	out := make([]geometry.Point2D, len(xy)/2)
	for i := range out {
		out[i] = geometry.Point2D{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

func rgb(r, g, b uint8) colorutil.RGB { return colorutil.NewRGB(r, g, b) }

// ships is the built-in design catalog. Coordinates are normalized so the
// nominal radius of each hull maps to 1.0 along its primary axes; Y is
// negative toward the nose.
var ships = []*Definition{
	{
		Name: "Sidewinder", Size: 35,
		VertexData:  pts(0, -1, 1, 0.7, 0, 0.4, -1, 0.7),
		FillColor:   rgb(120, 125, 135), StrokeColor: rgb(220, 225, 235), StrokeW: 0.05,
		Description: "Cheap, nimble scout. The first hull most pilots ever fly, and the first most of them lose.",
		Stats:       Stats{Speed: 7, Turn: 8, Hull: 3, Shield: 2},
	},
	{
		Name: "Adder", Size: 45,
		VertexData:  pts(0, -1, 0.45, -0.5, 0.75, 0.8, 0.3, 1, -0.3, 1, -0.75, 0.8, -0.45, -0.5),
		FillColor:   rgb(140, 130, 100), StrokeColor: rgb(230, 220, 190), StrokeW: 0.045,
		Description: "Compact courier with a smuggler's reputation. More cargo room than its silhouette suggests.",
		Stats:       Stats{Speed: 6, Turn: 6, Hull: 4, Shield: 3},
	},
	{
		Name: "Anaconda", Size: 180,
		VertexData:  pts(0, -1, 0.25, -0.75, 0.45, -0.2, 0.85, 0.55, 0.55, 1, -0.55, 1, -0.85, 0.55, -0.45, -0.2, -0.25, -0.75),
		FillColor:   rgb(90, 100, 90), StrokeColor: rgb(200, 215, 200), StrokeW: 0.03,
		Description: "A flying fortress. Slow to come about, nearly impossible to crack without capital-grade weapons.",
		Stats:       Stats{Speed: 3, Turn: 2, Hull: 10, Shield: 9},
	},
	{
		Name: "Asp Courier", Size: 70,
		VertexData:  pts(0, -1, 0.55, -0.55, 1, 0.1, 0.7, 0.75, 0.25, 0.55, -0.25, 0.55, -0.7, 0.75, -1, 0.1, -0.55, -0.55),
		FillColor:   rgb(105, 115, 140), StrokeColor: rgb(195, 205, 235), StrokeW: 0.04,
		Description: "Explorer's favourite. Wide sensor wings and long legs between fuel stops.",
		Stats:       Stats{Speed: 7, Turn: 5, Hull: 6, Shield: 6},
	},
	{
		Name: "Boa", Size: 115,
		VertexData:  pts(0, -1, 0.4, -0.45, 0.8, 0.3, 0.6, 1, -0.6, 1, -0.8, 0.3, -0.4, -0.45),
		FillColor:   rgb(110, 95, 90), StrokeColor: rgb(215, 195, 185), StrokeW: 0.035,
		Description: "Mid-weight freighter with a stubborn spaceframe. Favoured by co-op haulage crews.",
		Stats:       Stats{Speed: 4, Turn: 3, Hull: 8, Shield: 7},
	},
	{
		Name: "Bushmaster", Size: 50,
		VertexData:  pts(0, -1, 0.85, 0.2, 0.5, 1, -0.5, 1, -0.85, 0.2),
		FillColor:   rgb(95, 120, 95), StrokeColor: rgb(190, 225, 190), StrokeW: 0.05,
		Description: "Ambush fighter sold almost exclusively through back channels.",
		Stats:       Stats{Speed: 8, Turn: 7, Hull: 4, Shield: 4},
	},
	{
		Name: "Cobra Mk I", Size: 55,
		VertexData:  pts(0, -0.9, 0.6, -0.35, 1, 0.65, 0.35, 1, -0.35, 1, -1, 0.65, -0.6, -0.35),
		FillColor:   rgb(125, 115, 95), StrokeColor: rgb(235, 220, 190), StrokeW: 0.045,
		Description: "The original multipurpose hull from Paynou, Prossett and Salem. Dated but dependable.",
		Stats:       Stats{Speed: 5, Turn: 5, Hull: 5, Shield: 4},
	},
	{
		Name: "Cobra Mk III", Size: 65,
		VertexData:  pts(0, -0.8, 0.4, -0.55, 1, 0.35, 0.85, 0.75, 0.3, 1, -0.3, 1, -0.85, 0.75, -1, 0.35, -0.4, -0.55),
		FillColor:   rgb(130, 120, 100), StrokeColor: rgb(240, 225, 195), StrokeW: 0.04,
		Description: "The trader-fighter that built a thousand careers. Wide, flat, and endlessly modified.",
		Stats:       Stats{Speed: 6, Turn: 6, Hull: 6, Shield: 5},
	},
	{
		Name: "Chameleon", Size: 60,
		VertexData:  pts(0, -1, 0.5, -0.3, 0.9, 0.6, 0.35, 0.9, -0.35, 0.9, -0.9, 0.6, -0.5, -0.3),
		FillColor:   rgb(100, 125, 110), StrokeColor: rgb(195, 230, 210), StrokeW: 0.04,
		Description: "Hull plating shifts albedo to match background starfields. Popular with the cautious.",
		Stats:       Stats{Speed: 6, Turn: 6, Hull: 5, Shield: 5},
	},
	{
		Name: "Fer-de-Lance", Size: 75,
		VertexData:  pts(0, -1, 0.75, 0.45, 0.4, 1, -0.4, 1, -0.75, 0.45),
		FillColor:   rgb(85, 85, 100), StrokeColor: rgb(200, 200, 230), StrokeW: 0.05,
		Description: "A luxury predator. Everything swept back, everything overpowered.",
		Stats:       Stats{Speed: 8, Turn: 7, Hull: 6, Shield: 8},
	},
	{
		Name: "Gecko", Size: 45,
		VertexData:  pts(0, -0.85, 0.7, -0.2, 1, 0.7, 0.3, 1, -0.3, 1, -1, 0.7, -0.7, -0.2),
		FillColor:   rgb(115, 130, 95), StrokeColor: rgb(215, 235, 185), StrokeW: 0.05,
		Description: "Squat little raider, all engine and attitude.",
		Stats:       Stats{Speed: 7, Turn: 7, Hull: 3, Shield: 3},
	},
	{
		Name: "Ghavial", Size: 85,
		VertexData:  pts(0, -1, 0.35, -0.6, 0.75, 0.1, 0.6, 1, -0.6, 1, -0.75, 0.1, -0.35, -0.6),
		FillColor:   rgb(105, 105, 85), StrokeColor: rgb(210, 210, 175), StrokeW: 0.035,
		Description: "Long-nosed patrol craft run by frontier militias.",
		Stats:       Stats{Speed: 5, Turn: 4, Hull: 7, Shield: 6},
	},
	{
		Name: "Iguana", Size: 55,
		VertexData:  pts(0, -0.9, 0.55, -0.4, 0.85, 0.5, 0.4, 1, -0.4, 1, -0.85, 0.5, -0.55, -0.4),
		FillColor:   rgb(120, 135, 105), StrokeColor: rgb(225, 245, 200), StrokeW: 0.045,
		Description: "Rugged surface-to-orbit workhorse with oversized landing struts.",
		Stats:       Stats{Speed: 5, Turn: 5, Hull: 6, Shield: 4},
	},
	{
		Name: "Krait", Size: 40,
		VertexData:  pts(0, -1, 0.9, 0.55, 0.35, 0.85, -0.35, 0.85, -0.9, 0.55),
		FillColor:   rgb(135, 110, 110), StrokeColor: rgb(245, 205, 205), StrokeW: 0.055,
		Description: "Pirate skirmisher built in unlicensed yards. Cheap enough to lose, sharp enough to kill.",
		Stats:       Stats{Speed: 8, Turn: 8, Hull: 3, Shield: 2},
	},
	{
		Name: "Mamba", Size: 50,
		VertexData:  pts(0, -1, 0.8, 0.75, 0.3, 1, -0.3, 1, -0.8, 0.75),
		FillColor:   rgb(90, 95, 115), StrokeColor: rgb(195, 205, 240), StrokeW: 0.05,
		Description: "Racing hull pressed into combat service. Straight-line speed over everything.",
		Stats:       Stats{Speed: 9, Turn: 5, Hull: 3, Shield: 3},
	},
	{
		Name: "Monitor", Size: 130,
		VertexData:  pts(0, -0.8, 0.5, -0.6, 0.9, -0.1, 0.9, 0.6, 0.5, 1, -0.5, 1, -0.9, 0.6, -0.9, -0.1, -0.5, -0.6),
		FillColor:   rgb(95, 95, 95), StrokeColor: rgb(205, 205, 205), StrokeW: 0.03,
		Description: "Slab-sided system-defence platform. It does not dodge; it endures.",
		Stats:       Stats{Speed: 2, Turn: 2, Hull: 10, Shield: 8},
	},
	{
		Name: "Moray", Size: 60,
		VertexData:  pts(0, -1, 0.45, -0.2, 0.8, 0.7, 0.25, 1, -0.25, 1, -0.8, 0.7, -0.45, -0.2),
		FillColor:   rgb(85, 110, 125), StrokeColor: rgb(180, 220, 245), StrokeW: 0.04,
		Description: "Amphibious hull rated for ocean floors as well as hard vacuum.",
		Stats:       Stats{Speed: 5, Turn: 6, Hull: 5, Shield: 5},
	},
	{
		Name: "Ophidian", Size: 65,
		VertexData:  pts(0, -1, 0.3, -0.7, 0.6, 0.2, 0.5, 1, -0.5, 1, -0.6, 0.2, -0.3, -0.7),
		FillColor:   rgb(110, 100, 125), StrokeColor: rgb(220, 200, 245), StrokeW: 0.04,
		Description: "Slender diplomatic courier, more often chartered than owned.",
		Stats:       Stats{Speed: 7, Turn: 5, Hull: 4, Shield: 6},
	},
	{
		Name: "Python", Size: 130,
		VertexData:  pts(0, -1, 0.3, -0.65, 0.65, 0.1, 0.85, 0.7, 0.4, 1, -0.4, 1, -0.85, 0.7, -0.65, 0.1, -0.3, -0.65),
		FillColor:   rgb(100, 105, 95), StrokeColor: rgb(205, 215, 195), StrokeW: 0.03,
		Description: "Heavy trader with enough hardpoints to argue back. The convoy anchor of choice.",
		Stats:       Stats{Speed: 4, Turn: 3, Hull: 9, Shield: 7},
	},
	{
		Name: "Rattler", Size: 55,
		VertexData:  pts(0, -0.9, 0.5, -0.5, 1, 0.3, 0.6, 0.9, 0, 0.7, -0.6, 0.9, -1, 0.3, -0.5, -0.5),
		FillColor:   rgb(125, 110, 90), StrokeColor: rgb(240, 215, 175), StrokeW: 0.045,
		Description: "Notch-tailed gunship that telegraphs its attacks and wins anyway.",
		Stats:       Stats{Speed: 6, Turn: 6, Hull: 5, Shield: 4},
	},
	{
		Name: "Salamander", Size: 45,
		VertexData:  pts(0, -1, 0.7, 0.1, 0.45, 1, -0.45, 1, -0.7, 0.1),
		FillColor:   rgb(140, 95, 80), StrokeColor: rgb(250, 185, 160), StrokeW: 0.05,
		Description: "Close-orbit tug rated for stellar corona work. Runs hot by design.",
		Stats:       Stats{Speed: 5, Turn: 6, Hull: 5, Shield: 3},
	},
	{
		Name: "Shuttle", Size: 35,
		VertexData:  pts(0, -0.7, 0.55, -0.45, 0.75, 0.5, 0.45, 1, -0.45, 1, -0.75, 0.5, -0.55, -0.45),
		FillColor:   rgb(130, 130, 120), StrokeColor: rgb(235, 235, 220), StrokeW: 0.06,
		Description: "Station-to-surface people mover. Unarmed, unglamorous, everywhere.",
		Stats:       Stats{Speed: 3, Turn: 4, Hull: 3, Shield: 2},
	},
	{
		Name: "Skink", Size: 30,
		VertexData:  pts(0, -1, 0.8, 0.6, 0, 1, -0.8, 0.6),
		FillColor:   rgb(110, 130, 115), StrokeColor: rgb(210, 240, 220), StrokeW: 0.06,
		Description: "Single-seat courier barely larger than its own drive assembly.",
		Stats:       Stats{Speed: 8, Turn: 9, Hull: 2, Shield: 1},
	},
	{
		Name: "Taipan", Size: 50,
		VertexData:  pts(0, -1, 0.65, -0.1, 0.9, 0.9, -0.9, 0.9, -0.65, -0.1),
		FillColor:   rgb(100, 90, 90), StrokeColor: rgb(215, 190, 190), StrokeW: 0.05,
		Description: "Asymmetry-tolerant strike frame; field refits rarely bother re-trimming it.",
		Stats:       Stats{Speed: 7, Turn: 6, Hull: 4, Shield: 4},
	},
	{
		Name: "Tarantula", Size: 95,
		VertexData:  pts(0, -0.9, 0.55, -0.7, 1, -0.15, 0.7, 0.4, 0.9, 1, -0.9, 1, -0.7, 0.4, -1, -0.15, -0.55, -0.7),
		FillColor:   rgb(80, 80, 85), StrokeColor: rgb(185, 185, 200), StrokeW: 0.035,
		Description: "Eight-hardpoint weapons platform. Slow, spiteful, and heavily subsidised.",
		Stats:       Stats{Speed: 3, Turn: 3, Hull: 8, Shield: 7},
	},
	{
		Name: "Transporter", Size: 65,
		VertexData:  pts(0, -0.6, 0.6, -0.5, 0.85, 0.2, 0.85, 1, -0.85, 1, -0.85, 0.2, -0.6, -0.5),
		FillColor:   rgb(115, 115, 105), StrokeColor: rgb(225, 225, 205), StrokeW: 0.04,
		Description: "Boxy orbital lighter. The flat stern is a loading ramp, not a styling choice.",
		Stats:       Stats{Speed: 3, Turn: 3, Hull: 6, Shield: 3},
	},
	{
		Name: "Viper", Size: 55,
		VertexData:  pts(0, -1, 0.9, 0.8, 0.4, 1, -0.4, 1, -0.9, 0.8),
		FillColor:   rgb(90, 100, 120), StrokeColor: rgb(190, 210, 250), StrokeW: 0.05,
		Description: "Standard police interceptor. If you can read its hull number, you are already in trouble.",
		Stats:       Stats{Speed: 9, Turn: 7, Hull: 5, Shield: 5},
	},
	{
		Name: "Wolf Mk II", Size: 60,
		VertexData:  pts(0, -1, 0.55, -0.35, 1, 0.5, 0.5, 0.85, -0.5, 0.85, -1, 0.5, -0.55, -0.35),
		FillColor:   rgb(105, 95, 85), StrokeColor: rgb(220, 200, 180), StrokeW: 0.045,
		Description: "Mercenary mainstay. The Mk II traded cabin space for a second generator.",
		Stats:       Stats{Speed: 7, Turn: 7, Hull: 5, Shield: 6},
	},
	{
		Name: "Worm", Size: 25,
		VertexData:  pts(0, -0.8, 0.7, 0.7, 0, 1, -0.7, 0.7),
		FillColor:   rgb(125, 120, 110), StrokeColor: rgb(235, 225, 210), StrokeW: 0.07,
		Description: "Carrier-launched landing craft. Mostly harmless.",
		Stats:       Stats{Speed: 4, Turn: 5, Hull: 2, Shield: 1},
	},
	{
		Name: "Basilisk", Size: 90,
		VertexData:  pts(0, -1, 0.4, -0.3, 0.95, 0.25, 0.55, 1, -0.55, 1, -0.95, 0.25, -0.4, -0.3),
		FillColor:   rgb(95, 110, 100), StrokeColor: rgb(200, 225, 205), StrokeW: 0.035,
		Description: "Heavy interdictor whose sensor gaze is said to freeze a target's drives.",
		Stats:       Stats{Speed: 5, Turn: 4, Hull: 7, Shield: 8},
	},
	{
		Name: "Cottonmouth", Size: 45,
		VertexData:  pts(0, -0.9, 0.75, -0.1, 0.55, 1, -0.55, 1, -0.75, -0.1),
		FillColor:   rgb(135, 135, 125), StrokeColor: rgb(250, 250, 235), StrokeW: 0.05,
		Description: "Pale-hulled gunboat that hunts along shipping lanes after dark.",
		Stats:       Stats{Speed: 6, Turn: 6, Hull: 4, Shield: 4},
	},
	{
		Name: "Drake", Size: 105,
		VertexData:  pts(0, -1, 0.5, -0.55, 0.8, 0.15, 1, 0.85, 0, 0.6, -1, 0.85, -0.8, 0.15, -0.5, -0.55),
		FillColor:   rgb(115, 100, 80), StrokeColor: rgb(235, 205, 165), StrokeW: 0.03,
		Description: "Split-tail assault carrier; the notch shelters two launch bays.",
		Stats:       Stats{Speed: 4, Turn: 3, Hull: 8, Shield: 6},
	},
	{
		Name: "Egret", Size: 40,
		VertexData:  pts(0, -1, 0.35, 0, 0.85, 1, -0.85, 1, -0.35, 0),
		FillColor:   rgb(140, 140, 140), StrokeColor: rgb(255, 255, 255), StrokeW: 0.055,
		Description: "Long-necked survey skiff. Carries more antennae than armour.",
		Stats:       Stats{Speed: 6, Turn: 7, Hull: 2, Shield: 2},
	},
	{
		Name: "Falcon", Size: 35,
		VertexData:  pts(0, -1, 1, 0.9, 0, 0.55, -1, 0.9),
		FillColor:   rgb(100, 105, 110), StrokeColor: rgb(210, 220, 230), StrokeW: 0.06,
		Description: "Swept dart-wing interceptor flown by orbital defence wings.",
		Stats:       Stats{Speed: 9, Turn: 8, Hull: 3, Shield: 3},
	},
	{
		Name: "Vortex", Kind: KindProcedural, Size: 120,
		FillColor:   rgb(60, 70, 110), StrokeColor: rgb(160, 180, 250), StrokeW: 0.02,
		Description: "A procedurally animated anomaly rather than a hull. It cannot be edited, only admired.",
		Stats:       Stats{Speed: 10, Turn: 10, Hull: 1, Shield: 10},
	},
}

func init() {
	for _, d := range ships {
		Register(d)
	}
}
