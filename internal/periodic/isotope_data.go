package periodic

import "github.com/phrazzld/periodic-api/internal/domain/uncertain"

// Isotopes with a published relative atomic mass, keyed by element and
// ordered by mass number. Isotopic composition is present only where a
// representative natural abundance has been measured.
var isotopeRecords = map[Element][]Isotope{
	H: {
		withAbundance(1, centered(1.00782503223, 0.00000000009), centered(0.999885, 0.000070)),
		withAbundance(2, centered(2.01410177812, 0.00000000012), centered(0.000115, 0.000070)),
		massOnly(3, centered(3.0160492779, 0.0000000024)),
	},
	He: {
		withAbundance(3, centered(3.0160293201, 0.0000000025), centered(0.00000134, 0.00000003)),
		withAbundance(4, centered(4.00260325413, 0.00000000006), centered(0.99999866, 0.00000003)),
	},
	Li: {
		withAbundance(6, centered(6.0151228874, 0.0000000016), centered(0.0759, 0.0004)),
		withAbundance(7, centered(7.0160034366, 0.0000000045), centered(0.9241, 0.0004)),
	},
	B: {
		withAbundance(10, centered(10.01293695, 0.00000041), centered(0.199, 0.007)),
		withAbundance(11, centered(11.00930536, 0.00000045), centered(0.801, 0.007)),
	},
	C: {
		withAbundance(12, centered(12.0000000, 0.0000000), centered(0.9893, 0.0008)),
		withAbundance(13, centered(13.00335483507, 0.00000000023), centered(0.0107, 0.0008)),
		massOnly(14, centered(14.0032419884, 0.0000000040)),
	},
	N: {
		withAbundance(14, centered(14.00307400443, 0.00000000020), centered(0.99636, 0.00020)),
		withAbundance(15, centered(15.00010889888, 0.00000000064), centered(0.00364, 0.00020)),
	},
	O: {
		withAbundance(16, centered(15.99491461957, 0.00000000017), centered(0.99757, 0.00016)),
		withAbundance(17, centered(16.99913175650, 0.00000000069), centered(0.00038, 0.00001)),
		withAbundance(18, centered(17.99915961286, 0.00000000076), centered(0.00205, 0.00014)),
	},
	Ne: {
		withAbundance(20, centered(19.9924401762, 0.0000000017), centered(0.9048, 0.0003)),
		withAbundance(21, centered(20.993846685, 0.000000041), centered(0.0027, 0.0001)),
		withAbundance(22, centered(21.991385114, 0.000000018), centered(0.0925, 0.0003)),
	},
	Mg: {
		withAbundance(24, centered(23.985041697, 0.000000014), centered(0.7899, 0.0004)),
		withAbundance(25, centered(24.985836976, 0.000000050), centered(0.1000, 0.0001)),
		withAbundance(26, centered(25.982592968, 0.000000031), centered(0.1101, 0.0003)),
	},
	Si: {
		withAbundance(28, centered(27.97692653465, 0.00000000044), centered(0.92223, 0.00019)),
		withAbundance(29, centered(28.97649466490, 0.00000000052), centered(0.04685, 0.00008)),
		withAbundance(30, centered(29.973770136, 0.000000023), centered(0.03092, 0.00011)),
	},
	S: {
		withAbundance(32, centered(31.9720711744, 0.0000000014), centered(0.9499, 0.0026)),
		withAbundance(33, centered(32.9714589098, 0.0000000015), centered(0.0075, 0.0002)),
		withAbundance(34, centered(33.967867004, 0.000000047), centered(0.0425, 0.0024)),
		withAbundance(36, centered(35.96708071, 0.00000020), centered(0.0001, 0.0001)),
	},
	Cl: {
		withAbundance(35, centered(34.968852682, 0.000000037), centered(0.7576, 0.0010)),
		withAbundance(37, centered(36.965902602, 0.000000055), centered(0.2424, 0.0010)),
	},
	Ar: {
		withAbundance(36, centered(35.967545105, 0.000000028), centered(0.003336, 0.000021)),
		withAbundance(38, centered(37.96273211, 0.00000021), centered(0.000629, 0.000007)),
		withAbundance(40, centered(39.9623831237, 0.0000000024), centered(0.996035, 0.000025)),
	},
	K: {
		withAbundance(39, centered(38.9637064864, 0.0000000049), centered(0.932581, 0.000044)),
		withAbundance(40, centered(39.963998166, 0.000000060), centered(0.000117, 0.000001)),
		withAbundance(41, centered(40.9618252579, 0.0000000041), centered(0.067302, 0.000044)),
	},
	Ca: {
		withAbundance(40, centered(39.962590863, 0.000000022), centered(0.96941, 0.00156)),
		withAbundance(42, centered(41.95861783, 0.00000016), centered(0.00647, 0.00023)),
		withAbundance(43, centered(42.95876644, 0.00000024), centered(0.00135, 0.00010)),
		withAbundance(44, centered(43.95548156, 0.00000035), centered(0.02086, 0.00110)),
		withAbundance(46, centered(45.9536890, 0.0000024), centered(0.00004, 0.00003)),
		withAbundance(48, centered(47.95252276, 0.00000013), centered(0.00187, 0.00021)),
	},
	Ti: {
		withAbundance(46, centered(45.95262772, 0.00000035), centered(0.0825, 0.0003)),
		withAbundance(47, centered(46.95175879, 0.00000038), centered(0.0744, 0.0002)),
		withAbundance(48, centered(47.94794198, 0.00000038), centered(0.7372, 0.0003)),
		withAbundance(49, centered(48.94786568, 0.00000039), centered(0.0541, 0.0002)),
		withAbundance(50, centered(49.94478689, 0.00000039), centered(0.0518, 0.0002)),
	},
	V: {
		withAbundance(50, centered(49.94715601, 0.00000095), centered(0.00250, 0.00004)),
		withAbundance(51, centered(50.94395704, 0.00000094), centered(0.99750, 0.00004)),
	},
	Cr: {
		withAbundance(50, centered(49.94604183, 0.00000094), centered(0.04345, 0.00013)),
		withAbundance(52, centered(51.94050623, 0.00000063), centered(0.83789, 0.00018)),
		withAbundance(53, centered(52.94064815, 0.00000062), centered(0.09501, 0.00017)),
		withAbundance(54, centered(53.93887916, 0.00000061), centered(0.02365, 0.00007)),
	},
	Fe: {
		withAbundance(54, centered(53.93960899, 0.00000053), centered(0.05845, 0.00035)),
		withAbundance(56, centered(55.93493633, 0.00000049), centered(0.91754, 0.00036)),
		withAbundance(57, centered(56.93539284, 0.00000049), centered(0.02119, 0.00010)),
		withAbundance(58, centered(57.93327443, 0.00000053), centered(0.00282, 0.00004)),
	},
	Ni: {
		withAbundance(58, centered(57.93534241, 0.00000052), centered(0.68077, 0.00019)),
		withAbundance(60, centered(59.93078588, 0.00000052), centered(0.26223, 0.00015)),
		withAbundance(61, centered(60.93105557, 0.00000052), centered(0.011399, 0.000013)),
		withAbundance(62, centered(61.92834537, 0.00000055), centered(0.036346, 0.000040)),
		withAbundance(64, centered(63.92796682, 0.00000058), centered(0.009255, 0.000019)),
	},
	Cu: {
		withAbundance(63, centered(62.92959772, 0.00000056), centered(0.6915, 0.0015)),
		withAbundance(65, centered(64.92778970, 0.00000071), centered(0.3085, 0.0015)),
	},
	Zn: {
		withAbundance(64, centered(63.92914201, 0.00000071), centered(0.4917, 0.0075)),
		withAbundance(66, centered(65.92603381, 0.00000094), centered(0.2773, 0.0098)),
		withAbundance(67, centered(66.92712775, 0.00000096), centered(0.0404, 0.0016)),
		withAbundance(68, centered(67.92484455, 0.00000098), centered(0.1845, 0.0063)),
		withAbundance(70, centered(69.9253192, 0.0000021), centered(0.0061, 0.0010)),
	},
	Ga: {
		withAbundance(69, centered(68.9255735, 0.0000013), centered(0.60108, 0.00009)),
		withAbundance(71, centered(70.92470258, 0.00000087), centered(0.39892, 0.00009)),
	},
	Ge: {
		withAbundance(70, centered(69.92424875, 0.00000090), centered(0.2057, 0.0027)),
		withAbundance(72, centered(71.922075826, 0.000000081), centered(0.2745, 0.0032)),
		withAbundance(73, centered(72.923458956, 0.000000061), centered(0.0775, 0.0012)),
		withAbundance(74, centered(73.921177761, 0.000000013), centered(0.3650, 0.0020)),
		withAbundance(76, centered(75.921402726, 0.000000019), centered(0.0773, 0.0012)),
	},
	Se: {
		withAbundance(74, centered(73.922475934, 0.000000015), centered(0.0089, 0.0004)),
		withAbundance(76, centered(75.919213704, 0.000000017), centered(0.0937, 0.0029)),
		withAbundance(77, centered(76.919914154, 0.000000067), centered(0.0763, 0.0016)),
		withAbundance(78, centered(77.91730928, 0.00000020), centered(0.2377, 0.0028)),
		withAbundance(80, centered(79.9165218, 0.0000013), centered(0.4961, 0.0041)),
		withAbundance(82, centered(81.9166995, 0.0000015), centered(0.0873, 0.0022)),
	},
	Br: {
		withAbundance(79, centered(78.9183376, 0.0000014), centered(0.5069, 0.0007)),
		withAbundance(81, centered(80.9162897, 0.0000014), centered(0.4931, 0.0007)),
	},
	Kr: {
		withAbundance(78, centered(77.92036494, 0.00000076), centered(0.00355, 0.00003)),
		withAbundance(80, centered(79.91637808, 0.00000075), centered(0.02286, 0.00010)),
		withAbundance(82, centered(81.91348273, 0.00000094), centered(0.11593, 0.00031)),
		withAbundance(83, centered(82.91412716, 0.00000032), centered(0.11500, 0.00019)),
		withAbundance(84, centered(83.9114977282, 0.0000000044), centered(0.56987, 0.00015)),
		withAbundance(86, centered(85.9106106269, 0.0000000041), centered(0.17279, 0.00041)),
	},
	Rb: {
		withAbundance(85, centered(84.9117897379, 0.0000000054), centered(0.7217, 0.0002)),
		withAbundance(87, centered(86.9091805310, 0.0000000060), centered(0.2783, 0.0002)),
	},
	Sr: {
		withAbundance(84, centered(83.9134191, 0.0000013), centered(0.0056, 0.0001)),
		withAbundance(86, centered(85.9092606, 0.0000012), centered(0.0986, 0.0001)),
		withAbundance(87, centered(86.9088775, 0.0000012), centered(0.0700, 0.0001)),
		withAbundance(88, centered(87.9056125, 0.0000012), centered(0.8258, 0.0001)),
	},
	Zr: {
		withAbundance(90, centered(89.9046977, 0.0000020), centered(0.5145, 0.0040)),
		withAbundance(91, centered(90.9056396, 0.0000020), centered(0.1122, 0.0005)),
		withAbundance(92, centered(91.9050347, 0.0000020), centered(0.1715, 0.0008)),
		withAbundance(94, centered(93.9063108, 0.0000020), centered(0.1738, 0.0028)),
		withAbundance(96, centered(95.9082714, 0.0000021), centered(0.0280, 0.0009)),
	},
	Mo: {
		withAbundance(92, centered(91.90680796, 0.00000084), centered(0.1453, 0.0030)),
		withAbundance(94, centered(93.90508490, 0.00000048), centered(0.0915, 0.0009)),
		withAbundance(95, centered(94.90583877, 0.00000047), centered(0.1584, 0.0011)),
		withAbundance(96, centered(95.90467612, 0.00000047), centered(0.1667, 0.0015)),
		withAbundance(97, centered(96.90601812, 0.00000049), centered(0.0960, 0.0014)),
		withAbundance(98, centered(97.90540482, 0.00000049), centered(0.2439, 0.0037)),
		withAbundance(100, centered(99.9074718, 0.0000011), centered(0.0982, 0.0031)),
	},
	Tc: {
		massOnly(97, centered(96.9063667, 0.0000040)),
		massOnly(98, centered(97.9072124, 0.0000036)),
		massOnly(99, centered(98.9062508, 0.0000010)),
	},
	Ru: {
		withAbundance(96, centered(95.90759025, 0.00000049), centered(0.0554, 0.0014)),
		withAbundance(98, centered(97.9052868, 0.0000069), centered(0.0187, 0.0003)),
		withAbundance(99, centered(98.9059341, 0.0000011), centered(0.1276, 0.0014)),
		withAbundance(100, centered(99.9042143, 0.0000011), centered(0.1260, 0.0007)),
		withAbundance(101, centered(100.9055769, 0.0000012), centered(0.1706, 0.0002)),
		withAbundance(102, centered(101.9043441, 0.0000012), centered(0.3155, 0.0014)),
		withAbundance(104, centered(103.9054275, 0.0000028), centered(0.1862, 0.0027)),
	},
	Pd: {
		withAbundance(102, centered(101.9056022, 0.0000028), centered(0.0102, 0.0001)),
		withAbundance(104, centered(103.9040305, 0.0000014), centered(0.1114, 0.0008)),
		withAbundance(105, centered(104.9050796, 0.0000012), centered(0.2233, 0.0008)),
		withAbundance(106, centered(105.9034804, 0.0000012), centered(0.2733, 0.0003)),
		withAbundance(108, centered(107.9038916, 0.0000012), centered(0.2646, 0.0009)),
		withAbundance(110, centered(109.90517220, 0.00000075), centered(0.1172, 0.0009)),
	},
	Ag: {
		withAbundance(107, centered(106.9050916, 0.0000026), centered(0.51839, 0.00008)),
		withAbundance(109, centered(108.9047553, 0.0000014), centered(0.48161, 0.00008)),
	},
	Cd: {
		withAbundance(106, centered(105.9064599, 0.0000012), centered(0.0125, 0.0006)),
		withAbundance(108, centered(107.9041834, 0.0000012), centered(0.0089, 0.0003)),
		withAbundance(110, centered(109.90300661, 0.00000061), centered(0.1249, 0.0018)),
		withAbundance(111, centered(110.90418287, 0.00000061), centered(0.1280, 0.0012)),
		withAbundance(112, centered(111.90276287, 0.00000060), centered(0.2413, 0.0021)),
		withAbundance(113, centered(112.90440813, 0.00000045), centered(0.1222, 0.0012)),
		withAbundance(114, centered(113.90336509, 0.00000043), centered(0.2873, 0.0042)),
		withAbundance(116, centered(115.90476315, 0.00000017), centered(0.0749, 0.0018)),
	},
	In: {
		withAbundance(113, centered(112.90406184, 0.00000091), centered(0.0429, 0.0005)),
		withAbundance(115, centered(114.903878776, 0.000000012), centered(0.9571, 0.0005)),
	},
	Sn: {
		withAbundance(112, centered(111.90482387, 0.00000061), centered(0.0097, 0.0001)),
		withAbundance(114, centered(113.9027827, 0.0000010), centered(0.0066, 0.0001)),
		withAbundance(115, centered(114.903344699, 0.000000016), centered(0.0034, 0.0001)),
		withAbundance(116, centered(115.90174280, 0.00000010), centered(0.1454, 0.0009)),
		withAbundance(117, centered(116.90295398, 0.00000052), centered(0.0768, 0.0007)),
		withAbundance(118, centered(117.90160657, 0.00000054), centered(0.2422, 0.0009)),
		withAbundance(119, centered(118.90331117, 0.00000078), centered(0.0859, 0.0004)),
		withAbundance(120, centered(119.90220163, 0.00000097), centered(0.3258, 0.0009)),
		withAbundance(122, centered(121.9034438, 0.0000026), centered(0.0463, 0.0003)),
		withAbundance(124, centered(123.9052766, 0.0000011), centered(0.0579, 0.0005)),
	},
	Sb: {
		withAbundance(121, centered(120.9038120, 0.0000030), centered(0.5721, 0.0005)),
		withAbundance(123, centered(122.9042132, 0.0000023), centered(0.4279, 0.0005)),
	},
	Te: {
		withAbundance(120, centered(119.9040593, 0.0000033), centered(0.0009, 0.0001)),
		withAbundance(122, centered(121.9030435, 0.0000016), centered(0.0255, 0.0012)),
		withAbundance(123, centered(122.9042698, 0.0000016), centered(0.0089, 0.0003)),
		withAbundance(124, centered(123.9028171, 0.0000016), centered(0.0474, 0.0014)),
		withAbundance(125, centered(124.9044299, 0.0000016), centered(0.0707, 0.0015)),
		withAbundance(126, centered(125.9033109, 0.0000016), centered(0.1884, 0.0025)),
		withAbundance(128, centered(127.90446128, 0.00000093), centered(0.3174, 0.0008)),
		withAbundance(130, centered(129.906222748, 0.000000012), centered(0.3408, 0.0062)),
	},
	Xe: {
		withAbundance(124, centered(123.9058920, 0.0000019), centered(0.000952, 0.000003)),
		withAbundance(126, centered(125.9042983, 0.0000038), centered(0.000890, 0.000002)),
		withAbundance(128, centered(127.9035310, 0.0000011), centered(0.019102, 0.000008)),
		withAbundance(129, centered(128.9047808611, 0.0000000060), centered(0.264006, 0.000082)),
		withAbundance(130, centered(129.903509349, 0.000000010), centered(0.040710, 0.000013)),
		withAbundance(131, centered(130.90508406, 0.00000024), centered(0.212324, 0.000030)),
		withAbundance(132, centered(131.9041550856, 0.0000000056), centered(0.269086, 0.000033)),
		withAbundance(134, centered(133.90539466, 0.00000090), centered(0.104357, 0.000021)),
		withAbundance(136, centered(135.907214484, 0.000000011), centered(0.088573, 0.000044)),
	},
	Ba: {
		withAbundance(130, centered(129.9063207, 0.0000028), centered(0.00106, 0.00001)),
		withAbundance(132, centered(131.9050611, 0.0000011), centered(0.00101, 0.00001)),
		withAbundance(134, centered(133.90450818, 0.00000030), centered(0.02417, 0.00018)),
		withAbundance(135, centered(134.90568838, 0.00000029), centered(0.06592, 0.00012)),
		withAbundance(136, centered(135.90457573, 0.00000029), centered(0.07854, 0.00024)),
		withAbundance(137, centered(136.90582714, 0.00000030), centered(0.11232, 0.00024)),
		withAbundance(138, centered(137.90524700, 0.00000031), centered(0.71698, 0.00042)),
	},
	La: {
		withAbundance(138, centered(137.9071149, 0.0000037), centered(0.0008881, 0.0000071)),
		withAbundance(139, centered(138.9063563, 0.0000024), centered(0.9991119, 0.0000071)),
	},
	Ce: {
		withAbundance(136, centered(135.90712921, 0.00000041), centered(0.00185, 0.00002)),
		withAbundance(138, centered(137.905991, 0.000011), centered(0.00251, 0.00002)),
		withAbundance(140, centered(139.9054431, 0.0000023), centered(0.88450, 0.00051)),
		withAbundance(142, centered(141.9092504, 0.0000029), centered(0.11114, 0.00051)),
	},
	Nd: {
		withAbundance(142, centered(141.9077290, 0.0000020), centered(0.27152, 0.00040)),
		withAbundance(143, centered(142.9098200, 0.0000020), centered(0.12174, 0.00026)),
		withAbundance(144, centered(143.9100930, 0.0000020), centered(0.23798, 0.00019)),
		withAbundance(145, centered(144.9125793, 0.0000020), centered(0.08293, 0.00012)),
		withAbundance(146, centered(145.9131226, 0.0000020), centered(0.17189, 0.00032)),
		withAbundance(148, centered(147.9168993, 0.0000026), centered(0.05756, 0.00021)),
		withAbundance(150, centered(149.9209022, 0.0000018), centered(0.05638, 0.00028)),
	},
	Pm: {
		massOnly(145, centered(144.9127559, 0.0000033)),
		massOnly(147, centered(146.9151450, 0.0000019)),
	},
	Sm: {
		withAbundance(144, centered(143.9120065, 0.0000021), centered(0.0307, 0.0007)),
		withAbundance(147, centered(146.9149044, 0.0000019), centered(0.1499, 0.0018)),
		withAbundance(148, centered(147.9148292, 0.0000019), centered(0.1124, 0.0010)),
		withAbundance(149, centered(148.9171921, 0.0000018), centered(0.1382, 0.0007)),
		withAbundance(150, centered(149.9172829, 0.0000018), centered(0.0738, 0.0001)),
		withAbundance(152, centered(151.9197397, 0.0000018), centered(0.2675, 0.0016)),
		withAbundance(154, centered(153.9222169, 0.0000020), centered(0.2275, 0.0029)),
	},
	Eu: {
		withAbundance(151, centered(150.9198578, 0.0000018), centered(0.4781, 0.0006)),
		withAbundance(153, centered(152.9212380, 0.0000018), centered(0.5219, 0.0006)),
	},
	Gd: {
		withAbundance(152, centered(151.9197995, 0.0000018), centered(0.0020, 0.0001)),
		withAbundance(154, centered(153.9208741, 0.0000017), centered(0.0218, 0.0003)),
		withAbundance(155, centered(154.9226305, 0.0000017), centered(0.1480, 0.0012)),
		withAbundance(156, centered(155.9221312, 0.0000017), centered(0.2047, 0.0009)),
		withAbundance(157, centered(156.9239686, 0.0000017), centered(0.1565, 0.0002)),
		withAbundance(158, centered(157.9241123, 0.0000017), centered(0.2484, 0.0007)),
		withAbundance(160, centered(159.9270624, 0.0000018), centered(0.2186, 0.0019)),
	},
	Dy: {
		withAbundance(156, centered(155.9242847, 0.0000017), centered(0.00056, 0.00003)),
		withAbundance(158, centered(157.9244159, 0.0000031), centered(0.00095, 0.00003)),
		withAbundance(160, centered(159.9252046, 0.0000020), centered(0.02329, 0.00018)),
		withAbundance(161, centered(160.9269405, 0.0000020), centered(0.18889, 0.00042)),
		withAbundance(162, centered(161.9268056, 0.0000020), centered(0.25475, 0.00036)),
		withAbundance(163, centered(162.9287383, 0.0000020), centered(0.24896, 0.00042)),
		withAbundance(164, centered(163.9291819, 0.0000020), centered(0.28260, 0.00054)),
	},
	Er: {
		withAbundance(162, centered(161.9287884, 0.0000020), centered(0.00139, 0.00005)),
		withAbundance(164, centered(163.9292088, 0.0000020), centered(0.01601, 0.00003)),
		withAbundance(166, centered(165.9302995, 0.0000022), centered(0.33503, 0.00036)),
		withAbundance(167, centered(166.9320546, 0.0000022), centered(0.22869, 0.00009)),
		withAbundance(168, centered(167.9323767, 0.0000022), centered(0.26978, 0.00018)),
		withAbundance(170, centered(169.9354702, 0.0000026), centered(0.14910, 0.00036)),
	},
	Yb: {
		withAbundance(168, centered(167.9338896, 0.0000022), centered(0.00123, 0.00003)),
		withAbundance(170, centered(169.9347664, 0.0000022), centered(0.02982, 0.00039)),
		withAbundance(171, centered(170.9363302, 0.0000022), centered(0.1409, 0.0014)),
		withAbundance(172, centered(171.9363859, 0.0000022), centered(0.2168, 0.0013)),
		withAbundance(173, centered(172.9382151, 0.0000022), centered(0.16103, 0.00063)),
		withAbundance(174, centered(173.9388664, 0.0000022), centered(0.32026, 0.00080)),
		withAbundance(176, centered(175.9425764, 0.0000024), centered(0.12996, 0.00083)),
	},
	Lu: {
		withAbundance(175, centered(174.9407752, 0.0000020), centered(0.97401, 0.00013)),
		withAbundance(176, centered(175.9426897, 0.0000020), centered(0.02599, 0.00013)),
	},
	Hf: {
		withAbundance(174, centered(173.9400461, 0.0000028), centered(0.0016, 0.0001)),
		withAbundance(176, centered(175.9414076, 0.0000022), centered(0.0526, 0.0007)),
		withAbundance(177, centered(176.9432277, 0.0000020), centered(0.1860, 0.0009)),
		withAbundance(178, centered(177.9437058, 0.0000020), centered(0.2728, 0.0007)),
		withAbundance(179, centered(178.9458232, 0.0000020), centered(0.1362, 0.0002)),
		withAbundance(180, centered(179.9465570, 0.0000020), centered(0.3508, 0.0016)),
	},
	Ta: {
		withAbundance(180, centered(179.9474648, 0.0000024), centered(0.0001201, 0.0000032)),
		withAbundance(181, centered(180.9479958, 0.0000020), centered(0.9998799, 0.0000032)),
	},
	W: {
		withAbundance(180, centered(179.9467108, 0.0000020), centered(0.0012, 0.0001)),
		withAbundance(182, centered(181.94820394, 0.00000091), centered(0.2650, 0.0016)),
		withAbundance(183, centered(182.95022275, 0.00000090), centered(0.1431, 0.0004)),
		withAbundance(184, centered(183.95093092, 0.00000094), centered(0.3064, 0.0002)),
		withAbundance(186, centered(185.9543628, 0.0000017), centered(0.2843, 0.0019)),
	},
	Re: {
		withAbundance(185, centered(184.9529545, 0.0000013), centered(0.3740, 0.0002)),
		withAbundance(187, centered(186.9557501, 0.0000016), centered(0.6260, 0.0002)),
	},
	Os: {
		withAbundance(184, centered(183.9524885, 0.0000014), centered(0.0002, 0.0001)),
		withAbundance(186, centered(185.9538350, 0.0000016), centered(0.0159, 0.0003)),
		withAbundance(187, centered(186.9557474, 0.0000016), centered(0.0196, 0.0002)),
		withAbundance(188, centered(187.9558352, 0.0000016), centered(0.1324, 0.0008)),
		withAbundance(189, centered(188.9581442, 0.0000017), centered(0.1615, 0.0005)),
		withAbundance(190, centered(189.9584437, 0.0000017), centered(0.2626, 0.0002)),
		withAbundance(192, centered(191.9614770, 0.0000029), centered(0.4078, 0.0019)),
	},
	Ir: {
		withAbundance(191, centered(190.9605893, 0.0000021), centered(0.373, 0.002)),
		withAbundance(193, centered(192.9629216, 0.0000021), centered(0.627, 0.002)),
	},
	Pt: {
		withAbundance(190, centered(189.9599297, 0.0000063), centered(0.00012, 0.00002)),
		withAbundance(192, centered(191.9610387, 0.0000032), centered(0.00782, 0.00024)),
		withAbundance(194, centered(193.9626809, 0.0000010), centered(0.3286, 0.0040)),
		withAbundance(195, centered(194.9647917, 0.0000010), centered(0.3378, 0.0024)),
		withAbundance(196, centered(195.96495209, 0.00000099), centered(0.2521, 0.0034)),
		withAbundance(198, centered(197.9678949, 0.0000023), centered(0.07356, 0.00130)),
	},
	Hg: {
		withAbundance(196, centered(195.9658326, 0.0000032), centered(0.0015, 0.0001)),
		withAbundance(198, centered(197.96676860, 0.00000052), centered(0.0997, 0.0020)),
		withAbundance(199, centered(198.96828064, 0.00000046), centered(0.1687, 0.0022)),
		withAbundance(200, centered(199.96832659, 0.00000047), centered(0.2310, 0.0019)),
		withAbundance(201, centered(200.97030284, 0.00000069), centered(0.1318, 0.0009)),
		withAbundance(202, centered(201.97064340, 0.00000069), centered(0.2986, 0.0026)),
		withAbundance(204, centered(203.97349398, 0.00000053), centered(0.0687, 0.0015)),
	},
	Tl: {
		withAbundance(203, centered(202.9723446, 0.0000014), centered(0.2952, 0.0001)),
		withAbundance(205, centered(204.9744278, 0.0000014), centered(0.7048, 0.0001)),
	},
	Pb: {
		withAbundance(204, centered(203.9730440, 0.0000013), centered(0.014, 0.001)),
		withAbundance(206, centered(205.9744657, 0.0000013), centered(0.241, 0.001)),
		withAbundance(207, centered(206.9758973, 0.0000013), centered(0.221, 0.001)),
		withAbundance(208, centered(207.9766525, 0.0000013), centered(0.524, 0.001)),
	},
	Po: {
		massOnly(209, centered(208.9824308, 0.0000020)),
		massOnly(210, centered(209.9828741, 0.0000013)),
	},
	At: {
		massOnly(210, centered(209.9871479, 0.0000083)),
		massOnly(211, centered(210.9874966, 0.0000030)),
	},
	Rn: {
		massOnly(211, centered(210.9906011, 0.0000073)),
		massOnly(220, centered(220.0113941, 0.0000023)),
		massOnly(222, centered(222.0175782, 0.0000025)),
	},
	Ra: {
		massOnly(223, centered(223.0185023, 0.0000027)),
		massOnly(224, centered(224.0202120, 0.0000023)),
		massOnly(226, centered(226.0254103, 0.0000025)),
		massOnly(228, centered(228.0310707, 0.0000026)),
	},
	Th: {
		massOnly(230, centered(230.0331341, 0.0000019)),
		withAbundance(232, centered(232.0380558, 0.0000021), uncertain.Exact(1.0)),
	},
	U: {
		massOnly(233, centered(233.0396355, 0.0000029)),
		withAbundance(234, centered(234.0409523, 0.0000019), centered(0.000054, 0.000005)),
		withAbundance(235, centered(235.0439301, 0.0000019), centered(0.007204, 0.000006)),
		massOnly(236, centered(236.0455682, 0.0000019)),
		withAbundance(238, centered(238.0507884, 0.0000020), centered(0.992742, 0.000010)),
	},
	Np: {
		massOnly(236, centered(236.046570, 0.000054)),
		massOnly(237, centered(237.0481736, 0.0000019)),
	},
	Pu: {
		massOnly(238, centered(238.0495601, 0.0000019)),
		massOnly(239, centered(239.0521636, 0.0000019)),
		massOnly(240, centered(240.0538138, 0.0000019)),
		massOnly(241, centered(241.0568517, 0.0000019)),
		massOnly(242, centered(242.0587428, 0.0000020)),
		massOnly(244, centered(244.0642053, 0.0000056)),
	},
	Am: {
		massOnly(241, centered(241.0568293, 0.0000019)),
		massOnly(243, centered(243.0613813, 0.0000024)),
	},
	Cm: {
		massOnly(243, centered(243.0613893, 0.0000022)),
		massOnly(244, centered(244.0627528, 0.0000019)),
		massOnly(245, centered(245.0654915, 0.0000022)),
		massOnly(246, centered(246.0672238, 0.0000022)),
		massOnly(247, centered(247.0703541, 0.0000047)),
		massOnly(248, centered(248.0723499, 0.0000056)),
	},
	Bk: {
		massOnly(247, centered(247.0703073, 0.0000059)),
		massOnly(249, centered(249.0749877, 0.0000027)),
	},
	Cf: {
		massOnly(249, centered(249.0748539, 0.0000023)),
		massOnly(250, centered(250.0764062, 0.0000022)),
		massOnly(251, centered(251.0795886, 0.0000048)),
		massOnly(252, centered(252.0816272, 0.0000056)),
	},
	Md: {
		massOnly(258, centered(258.0984315, 0.0000050)),
		massOnly(260, centered(260.10365, 0.00034)),
	},
}
