package periodic

import "github.com/phrazzld/periodic-api/internal/domain/uncertain"

// Elements in atomic-number order.
const (
	H Element = iota + 1
	He
	Li
	Be
	B
	C
	N
	O
	F
	Ne
	Na
	Mg
	Al
	Si
	P
	S
	Cl
	Ar
	K
	Ca
	Sc
	Ti
	V
	Cr
	Mn
	Fe
	Co
	Ni
	Cu
	Zn
	Ga
	Ge
	As
	Se
	Br
	Kr
	Rb
	Sr
	Y
	Zr
	Nb
	Mo
	Tc
	Ru
	Rh
	Pd
	Ag
	Cd
	In
	Sn
	Sb
	Te
	I
	Xe
	Cs
	Ba
	La
	Ce
	Pr
	Nd
	Pm
	Sm
	Eu
	Gd
	Tb
	Dy
	Ho
	Er
	Tm
	Yb
	Lu
	Hf
	Ta
	W
	Re
	Os
	Ir
	Pt
	Au
	Hg
	Tl
	Pb
	Bi
	Po
	At
	Rn
	Fr
	Ra
	Ac
	Th
	Pa
	U
	Np
	Pu
	Am
	Cm
	Bk
	Cf
	Es
	Fm
	Md
	No
	Lr
	Rf
	Db
	Sg
	Bh
	Hs
	Mt
	Ds
	Rg
	Cn
	Nh
	Fl
	Mc
	Lv
	Ts
	Og
)

var elementRecords = [Count + 1]elementRecord{
	H: {symbol: "H", name: "Hydrogen", group: 1, period: 1, valency: []int{1}},
	He: {symbol: "He", name: "Helium", group: 18, period: 1, valency: []int{0}},
	Li: {symbol: "Li", name: "Lithium", group: 1, period: 2, valency: []int{1}},
	Be: {symbol: "Be", name: "Beryllium", group: 2, period: 2, valency: []int{2}},
	B: {symbol: "B", name: "Boron", group: 13, period: 2, valency: []int{3}},
	C: {symbol: "C", name: "Carbon", group: 14, period: 2, valency: []int{4, 2}},
	N: {symbol: "N", name: "Nitrogen", group: 15, period: 2, valency: []int{1, 2, 3, 4}},
	O: {symbol: "O", name: "Oxygen", group: 16, period: 2, valency: []int{2}},
	F: {symbol: "F", name: "Fluorine", group: 17, period: 2, valency: []int{1}},
	Ne: {symbol: "Ne", name: "Neon", group: 18, period: 2, valency: []int{0}},
	Na: {symbol: "Na", name: "Sodium", group: 1, period: 3, valency: []int{1}},
	Mg: {symbol: "Mg", name: "Magnesium", group: 2, period: 3, valency: []int{2}},
	Al: {symbol: "Al", name: "Aluminium", group: 13, period: 3, valency: []int{3}},
	Si: {symbol: "Si", name: "Silicon", group: 14, period: 3, valency: []int{4}},
	P: {symbol: "P", name: "Phosphorus", group: 15, period: 3, valency: []int{3, 5}},
	S: {symbol: "S", name: "Sulfur", group: 16, period: 3, valency: []int{6, 4, 2}},
	Cl: {symbol: "Cl", name: "Chlorine", group: 17, period: 3, valency: []int{1, 3, 5, 7}},
	Ar: {symbol: "Ar", name: "Argon", group: 18, period: 3, valency: []int{0}},
	K: {symbol: "K", name: "Potassium", group: 1, period: 4, valency: []int{1}},
	Ca: {symbol: "Ca", name: "Calcium", group: 2, period: 4, valency: []int{2}},
	Sc: {symbol: "Sc", name: "Scandium", group: 3, period: 4, valency: []int{3}},
	Ti: {symbol: "Ti", name: "Titanium", group: 4, period: 4, valency: []int{2, 3, 4}},
	V: {symbol: "V", name: "Vanadium", group: 5, period: 4, valency: []int{2, 3, 4, 5}},
	Cr: {symbol: "Cr", name: "Chromium", group: 6, period: 4, valency: []int{2, 3, 6}},
	Mn: {symbol: "Mn", name: "Manganese", group: 7, period: 4, valency: []int{2, 3, 4, 6, 7}},
	Fe: {symbol: "Fe", name: "Iron", group: 8, period: 4, valency: []int{2, 3}},
	Co: {symbol: "Co", name: "Cobalt", group: 9, period: 4, valency: []int{2, 3}},
	Ni: {symbol: "Ni", name: "Nickel", group: 10, period: 4, valency: []int{2, 3, 4}},
	Cu: {symbol: "Cu", name: "Copper", group: 11, period: 4, valency: []int{1, 2}},
	Zn: {symbol: "Zn", name: "Zinc", group: 12, period: 4, valency: []int{2}},
	Ga: {symbol: "Ga", name: "Gallium", group: 13, period: 4, valency: []int{3}},
	Ge: {symbol: "Ge", name: "Germanium", group: 14, period: 4, valency: []int{2, 4}},
	As: {symbol: "As", name: "Arsenic", group: 15, period: 4, valency: []int{3, 5}},
	Se: {symbol: "Se", name: "Selenium", group: 16, period: 4, valency: []int{2, 4, 6}},
	Br: {symbol: "Br", name: "Bromine", group: 17, period: 4, valency: []int{1, 3, 5, 7}},
	Kr: {symbol: "Kr", name: "Krypton", group: 18, period: 4, valency: []int{6, 4, 2}},
	Rb: {symbol: "Rb", name: "Rubidium", group: 1, period: 5, valency: []int{1}},
	Sr: {symbol: "Sr", name: "Strontium", group: 2, period: 5, valency: []int{2}},
	Y: {symbol: "Y", name: "Yttrium", group: 3, period: 5, valency: []int{3}},
	Zr: {symbol: "Zr", name: "Zirconium", group: 4, period: 5, valency: []int{2, 3, 4}},
	Nb: {symbol: "Nb", name: "Niobium", group: 5, period: 5, valency: []int{1, 2, 3, 4, 5}},
	Mo: {symbol: "Mo", name: "Molybdenum", group: 6, period: 5, valency: []int{2, 3, 4, 5, 6}},
	Tc: {symbol: "Tc", name: "Technetium", group: 7, period: 5, valency: []int{1, 2, 3, 4, 5, 6, 7}},
	Ru: {symbol: "Ru", name: "Ruthenium", group: 8, period: 5, valency: []int{2, 3, 4, 5, 6, 7, 8}},
	Rh: {symbol: "Rh", name: "Rhodium", group: 9, period: 5, valency: []int{1, 2, 3, 4, 5}},
	Pd: {symbol: "Pd", name: "Palladium", group: 10, period: 5, valency: []int{1, 2, 3, 4}},
	Ag: {symbol: "Ag", name: "Silver", group: 11, period: 5, valency: []int{1, 2, 3}},
	Cd: {symbol: "Cd", name: "Cadmium", group: 12, period: 5, valency: []int{2}},
	In: {symbol: "In", name: "Indium", group: 13, period: 5, valency: []int{3}},
	Sn: {symbol: "Sn", name: "Tin", group: 14, period: 5, valency: []int{2, 4}},
	Sb: {symbol: "Sb", name: "Antimony", group: 15, period: 5, valency: []int{3, 5}},
	Te: {symbol: "Te", name: "Tellurium", group: 16, period: 5, valency: []int{6, 4, 2}},
	I: {symbol: "I", name: "Iodine", group: 17, period: 5, valency: []int{1, 3, 5, 7}},
	Xe: {symbol: "Xe", name: "Xenon", group: 18, period: 5, valency: []int{2, 4, 6, 8}},
	Cs: {symbol: "Cs", name: "Caesium", group: 1, period: 6, valency: []int{1}},
	Ba: {symbol: "Ba", name: "Barium", group: 2, period: 6, valency: []int{2}},
	La: {symbol: "La", name: "Lanthanum", group: 3, period: 6, valency: []int{3}},
	Ce: {symbol: "Ce", name: "Cerium", group: 3, period: 6, valency: []int{3, 4}},
	Pr: {symbol: "Pr", name: "Praseodymium", group: 3, period: 6, valency: []int{3, 4}},
	Nd: {symbol: "Nd", name: "Neodymium", group: 3, period: 6, valency: []int{3}},
	Pm: {symbol: "Pm", name: "Promethium", group: 3, period: 6, valency: []int{3}},
	Sm: {symbol: "Sm", name: "Samarium", group: 3, period: 6, valency: []int{2, 3}},
	Eu: {symbol: "Eu", name: "Europium", group: 3, period: 6, valency: []int{2, 3}},
	Gd: {symbol: "Gd", name: "Gadolinium", group: 3, period: 6, valency: []int{3}},
	Tb: {symbol: "Tb", name: "Terbium", group: 3, period: 6, valency: []int{3, 4}},
	Dy: {symbol: "Dy", name: "Dysprosium", group: 3, period: 6, valency: []int{3}},
	Ho: {symbol: "Ho", name: "Holmium", group: 3, period: 6, valency: []int{3}},
	Er: {symbol: "Er", name: "Erbium", group: 3, period: 6, valency: []int{3}},
	Tm: {symbol: "Tm", name: "Thulium", group: 3, period: 6, valency: []int{2, 3}},
	Yb: {symbol: "Yb", name: "Ytterbium", group: 3, period: 6, valency: []int{2, 3}},
	Lu: {symbol: "Lu", name: "Lutetium", group: 3, period: 6, valency: []int{3}},
	Hf: {symbol: "Hf", name: "Hafnium", group: 4, period: 6, valency: []int{2, 3, 4}},
	Ta: {symbol: "Ta", name: "Tantalum", group: 5, period: 6, valency: []int{1, 2, 3, 4, 5}},
	W: {symbol: "W", name: "Tungsten", group: 6, period: 6, valency: []int{2, 3, 4, 5, 6}},
	Re: {symbol: "Re", name: "Rhenium", group: 7, period: 6, valency: []int{1, 2, 3, 4, 5, 6, 7}},
	Os: {symbol: "Os", name: "Osmium", group: 8, period: 6, valency: []int{2, 3, 4, 5, 6, 8}},
	Ir: {symbol: "Ir", name: "Iridium", group: 9, period: 6, valency: []int{1, 2, 3, 4, 5, 6}},
	Pt: {symbol: "Pt", name: "Platinum", group: 10, period: 6, valency: []int{1, 2, 3, 4, 5}},
	Au: {symbol: "Au", name: "Gold", group: 11, period: 6, valency: []int{1, 2, 3}},
	Hg: {symbol: "Hg", name: "Mercury", group: 12, period: 6, valency: []int{2}},
	Tl: {symbol: "Tl", name: "Thallium", group: 13, period: 6, valency: []int{1, 3}},
	Pb: {symbol: "Pb", name: "Lead", group: 14, period: 6, valency: []int{2, 4}},
	Bi: {symbol: "Bi", name: "Bismuth", group: 15, period: 6, valency: []int{3, 5}},
	Po: {symbol: "Po", name: "Polonium", group: 16, period: 6, valency: []int{6, 4, 2}},
	At: {symbol: "At", name: "Astatine", group: 17, period: 6, valency: []int{}},
	Rn: {symbol: "Rn", name: "Radon", group: 18, period: 6, valency: []int{0}},
	Fr: {symbol: "Fr", name: "Francium", group: 1, period: 7, valency: []int{1}},
	Ra: {symbol: "Ra", name: "Radium", group: 2, period: 7, valency: []int{2}},
	Ac: {symbol: "Ac", name: "Actinium", group: 3, period: 7, valency: []int{3}},
	Th: {symbol: "Th", name: "Thorium", group: 3, period: 7, valency: []int{2, 3, 4}},
	Pa: {symbol: "Pa", name: "Protactinium", group: 3, period: 7, valency: []int{4, 5}},
	U: {symbol: "U", name: "Uranium", group: 3, period: 7, valency: []int{3, 4}},
	Np: {symbol: "Np", name: "Neptunium", group: 3, period: 7, valency: []int{3, 4, 5, 6}},
	Pu: {symbol: "Pu", name: "Plutonium", group: 3, period: 7, valency: []int{2, 3, 4}},
	Am: {symbol: "Am", name: "Americium", group: 3, period: 7, valency: []int{3, 4, 5, 6}},
	Cm: {symbol: "Cm", name: "Curium", group: 3, period: 7, valency: []int{3, 4}},
	Bk: {symbol: "Bk", name: "Berkelium", group: 3, period: 7, valency: []int{3, 4}},
	Cf: {symbol: "Cf", name: "Californium", group: 3, period: 7, valency: []int{2, 3, 4}},
	Es: {symbol: "Es", name: "Einsteinium", group: 3, period: 7, valency: []int{2, 3}},
	Fm: {symbol: "Fm", name: "Fermium", group: 3, period: 7, valency: []int{2, 3}},
	Md: {symbol: "Md", name: "Mendelevium", group: 3, period: 7, valency: []int{2, 3}},
	No: {symbol: "No", name: "Nobelium", group: 3, period: 7, valency: []int{2, 3}},
	Lr: {symbol: "Lr", name: "Lawrencium", group: 3, period: 7, valency: []int{3}},
	Rf: {symbol: "Rf", name: "Rutherfordium", group: 4, period: 7, valency: []int{}},
	Db: {symbol: "Db", name: "Dubnium", group: 5, period: 7, valency: []int{}},
	Sg: {symbol: "Sg", name: "Seaborgium", group: 6, period: 7, valency: []int{}},
	Bh: {symbol: "Bh", name: "Bohrium", group: 7, period: 7, valency: []int{}},
	Hs: {symbol: "Hs", name: "Hassium", group: 8, period: 7, valency: []int{}},
	Mt: {symbol: "Mt", name: "Meitnerium", group: 9, period: 7, valency: []int{}},
	Ds: {symbol: "Ds", name: "Darmstadtium", group: 10, period: 7, valency: []int{}},
	Rg: {symbol: "Rg", name: "Roentgenium", group: 11, period: 7, valency: []int{}},
	Cn: {symbol: "Cn", name: "Copernicium", group: 12, period: 7, valency: []int{}},
	Nh: {symbol: "Nh", name: "Nihonium", group: 13, period: 7, valency: []int{}},
	Fl: {symbol: "Fl", name: "Flerovium", group: 14, period: 7, valency: []int{}},
	Mc: {symbol: "Mc", name: "Moscovium", group: 15, period: 7, valency: []int{}},
	Lv: {symbol: "Lv", name: "Livermorium", group: 16, period: 7, valency: []int{}},
	Ts: {symbol: "Ts", name: "Tennessine", group: 17, period: 7, valency: []int{}},
	Og: {symbol: "Og", name: "Oganesson", group: 18, period: 7, valency: []int{}},
}

// Abridged standard atomic weights, rounded to at most five significant
// digits. Elements without a stable isotope have no entry.
var abridgedWeights = map[Element]uncertain.Quantity{
	H: centered(1.0080, 0.0002),
	He: centered(4.0026, 0.0001),
	Li: centered(6.94, 0.06),
	Be: centered(9.0122, 0.0001),
	B: centered(10.81, 0.02),
	C: centered(12.011, 0.002),
	N: centered(14.007, 0.001),
	O: centered(15.999, 0.001),
	F: centered(18.998, 0.001),
	Ne: centered(20.180, 0.001),
	Na: centered(22.990, 0.001),
	Mg: centered(24.305, 0.002),
	Al: centered(26.982, 0.001),
	Si: centered(28.085, 0.001),
	P: centered(30.974, 0.001),
	S: centered(32.06, 0.02),
	Cl: centered(35.45, 0.01),
	Ar: centered(39.95, 0.16),
	K: centered(39.098, 0.001),
	Ca: centered(40.078, 0.004),
	Sc: centered(44.956, 0.001),
	Ti: centered(47.867, 0.001),
	V: centered(50.942, 0.001),
	Cr: centered(51.996, 0.001),
	Mn: centered(54.938, 0.001),
	Fe: centered(55.845, 0.002),
	Co: centered(58.933, 0.001),
	Ni: centered(58.693, 0.001),
	Cu: centered(63.546, 0.003),
	Zn: centered(65.38, 0.02),
	Ga: centered(69.723, 0.001),
	Ge: centered(72.630, 0.008),
	As: centered(74.922, 0.001),
	Se: centered(78.971, 0.008),
	Br: centered(79.904, 0.003),
	Kr: centered(83.798, 0.002),
	Rb: centered(85.468, 0.001),
	Sr: centered(87.62, 0.01),
	Y: centered(88.906, 0.001),
	Zr: centered(91.224, 0.002),
	Nb: centered(92.906, 0.001),
	Mo: centered(95.95, 0.01),
	Ru: centered(101.07, 0.02),
	Rh: centered(102.91, 0.01),
	Pd: centered(106.42, 0.01),
	Ag: centered(107.87, 0.01),
	Cd: centered(112.41, 0.01),
	In: centered(114.82, 0.01),
	Sn: centered(118.71, 0.01),
	Sb: centered(121.76, 0.01),
	Te: centered(127.60, 0.03),
	I: centered(126.90, 0.01),
	Xe: centered(131.29, 0.01),
	Cs: centered(132.91, 0.01),
	Ba: centered(137.33, 0.01),
	La: centered(138.91, 0.01),
	Ce: centered(140.12, 0.01),
	Pr: centered(140.91, 0.01),
	Nd: centered(144.24, 0.01),
	Sm: centered(150.36, 0.02),
	Eu: centered(151.96, 0.01),
	Gd: centered(157.25, 0.03),
	Tb: centered(158.93, 0.01),
	Dy: centered(162.50, 0.01),
	Ho: centered(164.93, 0.01),
	Er: centered(167.26, 0.01),
	Tm: centered(168.93, 0.01),
	Yb: centered(173.05, 0.02),
	Lu: centered(174.97, 0.01),
	Hf: centered(178.49, 0.01),
	Ta: centered(180.95, 0.01),
	W: centered(183.84, 0.01),
	Re: centered(186.21, 0.01),
	Os: centered(190.23, 0.03),
	Ir: centered(192.22, 0.01),
	Pt: centered(195.08, 0.02),
	Au: centered(196.97, 0.01),
	Hg: centered(200.59, 0.01),
	Tl: centered(204.38, 0.01),
	Pb: centered(207.2, 1.1),
	Bi: centered(208.98, 0.01),
	Th: centered(232.04, 0.01),
	Pa: centered(231.04, 0.01),
	U: centered(238.03, 0.01),
}

// Unabridged standard atomic weights. Elements whose isotopic composition
// varies in normal materials are published as an interval.
var unabridgedWeights = map[Element]uncertain.Quantity{
	H: interval(1.00784, 1.00811),
	He: centered(4.002602, 0.000002),
	Li: interval(6.938, 6.997),
	Be: centered(9.0121831, 0.0000005),
	B: interval(10.806, 10.821),
	C: interval(12.0096, 12.0116),
	N: interval(14.00643, 14.00728),
	O: interval(15.99903, 15.99977),
	F: centered(18.998403162, 0.000000005),
	Ne: centered(20.1797, 0.0006),
	Na: centered(22.98976928, 0.00000002),
	Mg: interval(24.304, 24.307),
	Al: centered(26.9815384, 0.0000003),
	Si: interval(28.084, 28.086),
	P: centered(30.973761998, 0.000000005),
	S: interval(32.059, 32.076),
	Cl: interval(35.446, 35.457),
	Ar: interval(39.792, 39.963),
	K: centered(39.0983, 0.0001),
	Ca: centered(40.078, 0.004),
	Sc: centered(44.955907, 0.000004),
	Ti: centered(47.867, 0.001),
	V: centered(50.9415, 0.0001),
	Cr: centered(51.9961, 0.0006),
	Mn: centered(54.938043, 0.000002),
	Fe: centered(55.845, 0.002),
	Co: centered(58.933194, 0.000003),
	Ni: centered(58.6934, 0.0004),
	Cu: centered(63.546, 0.003),
	Zn: centered(65.38, 0.02),
	Ga: centered(69.723, 0.001),
	Ge: centered(72.630, 0.008),
	As: centered(74.921595, 0.000006),
	Se: centered(78.971, 0.008),
	Br: interval(79.901, 79.907),
	Kr: centered(83.798, 0.002),
	Rb: centered(85.4678, 0.0003),
	Sr: centered(87.62, 0.01),
	Y: centered(88.905838, 0.000002),
	Zr: centered(91.224, 0.002),
	Nb: centered(92.90637, 0.00001),
	Mo: centered(95.95, 0.01),
	Ru: centered(101.07, 0.02),
	Rh: centered(102.90549, 0.00002),
	Pd: centered(106.42, 0.01),
	Ag: centered(107.8682, 0.0002),
	Cd: centered(112.414, 0.004),
	In: centered(114.818, 0.001),
	Sn: centered(118.710, 0.007),
	Sb: centered(121.760, 0.001),
	Te: centered(127.60, 0.03),
	I: centered(126.90447, 0.00003),
	Xe: centered(131.293, 0.006),
	Cs: centered(132.90545196, 0.00000006),
	Ba: centered(137.327, 0.007),
	La: centered(138.90547, 0.00007),
	Ce: centered(140.116, 0.001),
	Pr: centered(140.90766, 0.00001),
	Nd: centered(144.242, 0.003),
	Sm: centered(150.36, 0.02),
	Eu: centered(151.964, 0.001),
	Gd: centered(157.25, 0.03),
	Tb: centered(158.925354, 0.000007),
	Dy: centered(162.500, 0.001),
	Ho: centered(164.930329, 0.000005),
	Er: centered(167.259, 0.003),
	Tm: centered(168.934219, 0.000005),
	Yb: centered(173.045, 0.010),
	Lu: centered(174.9668, 0.0001),
	Hf: centered(178.486, 0.006),
	Ta: centered(180.94788, 0.00002),
	W: centered(183.84, 0.01),
	Re: centered(186.207, 0.001),
	Os: centered(190.23, 0.03),
	Ir: centered(192.217, 0.002),
	Pt: centered(195.084, 0.009),
	Au: centered(196.966570, 0.000004),
	Hg: centered(200.592, 0.003),
	Tl: interval(204.382, 204.385),
	Pb: interval(206.14, 207.94),
	Bi: centered(208.98040, 0.00001),
	Th: centered(232.0377, 0.0004),
	Pa: centered(231.03588, 0.00001),
	U: centered(238.02891, 0.00003),
}
