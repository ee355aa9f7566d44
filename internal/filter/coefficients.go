package filter

// profiles is the coefficient table, ordered from the highest rate down.
//
// Rates of 32 kHz and above use a 150 Hz Butterworth corner. The lower
// rates keep the corners of the original ReplayGain tables (135 Hz at
// 24/22.05 kHz, 130 Hz at 16 kHz, 110 Hz at 12 kHz, 105 Hz at 11.025 kHz,
// 100 Hz at 8 kHz) so results stay comparable with existing tags.
var profiles = [...]Profile{
	{
		Rate: 192000,
		Yule: Coefficients{
			B: []float64{
				0.01184742123123, -0.04631092400086, 0.06584226961238,
				-0.02165588522478, -0.05656260778952, 0.08607493592760,
				-0.03375544339786, -0.04216579932754, 0.06416711490648,
				-0.03444708260844, 0.00697275872241,
			},
			A: []float64{
				1.00000000000000, -5.24727318348167, 10.60821585192244,
				-8.74127665810413, -1.33906071371683, 8.07972882096606,
				-5.46179918950847, 0.54318070652536, 0.87450969224280,
				-0.34656083539754, 0.03034796843589,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99653501465135, -1.99307002930271, 0.99653501465135},
			A: []float64{1.00000000000000, -1.99305802314321, 0.99308203546221},
		},
	},
	{
		Rate: 176400,
		Yule: Coefficients{
			B: []float64{
				0.00268568524529, -0.00852379426080, 0.00852704191347,
				0.00146116310295, -0.00950855828762, 0.00625449515499,
				0.00116183868722, -0.00362461417136, 0.00203961000134,
				-0.00050664587933, 0.00004327455427,
			},
			A: []float64{
				1.00000000000000, -5.57512782763045, 12.44291056065794,
				-12.87462799681221, 3.08554846961576, 6.62493459880692,
				-7.07662766313248, 2.51175542736441, 0.06731510802735,
				-0.24567753819213, 0.03961404162376,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99622916581118, -1.99245833162236, 0.99622916581118},
			A: []float64{1.00000000000000, -1.99244411238133, 0.99247255086339},
		},
	},
	{
		Rate: 144000,
		Yule: Coefficients{
			B: []float64{
				0.00639682359450, -0.02556437970955, 0.04230854400938,
				-0.03722462201267, 0.01718514827295, 0.00610592243009,
				-0.03065965747365, 0.04345745003539, -0.03298592681309,
				0.01320937236809, -0.00220304127757,
			},
			A: []float64{
				1.00000000000000, -6.14814623523425, 15.80002457141566,
				-20.78487587686937, 11.98848552310315, 3.36462015062606,
				-10.22419868359470, 6.65599702146473, -1.67141861110485,
				-0.05417956536718, 0.07374767867406,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99538268958706, -1.99076537917413, 0.99538268958706},
			A: []float64{1.00000000000000, -1.99074405950505, 0.99078669884321},
		},
	},
	{
		Rate: 128000,
		Yule: Coefficients{
			B: []float64{
				0.00553120584305, -0.02112620545016, 0.03549076243117,
				-0.03362498312306, 0.01425867248183, 0.01344686928787,
				-0.03392770787836, 0.03464136459530, -0.02039116051549,
				0.00667420794705, -0.00093763762995,
			},
			A: []float64{
				1.00000000000000, -6.14581710839925, 16.04785903675838,
				-22.19089131407749, 15.24756471580286, -0.52001440400238,
				-8.00488641699940, 6.60916094768855, -2.37856022810923,
				0.33106947986101, 0.00459820832036,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99480702681278, -1.98961405362557, 0.99480702681278},
			A: []float64{1.00000000000000, -1.98958708647324, 0.98964102077790},
		},
	},
	{
		Rate: 112000,
		Yule: Coefficients{
			B: []float64{
				0.00528778718259, -0.01893240907245, 0.03185982561867,
				-0.02926260297838, 0.00715743034072, 0.01985743355827,
				-0.03222614850941, 0.02565681978192, -0.01210662313473,
				0.00325436284541, -0.00044173593001,
			},
			A: []float64{
				1.00000000000000, -6.24932108456288, 17.42344320538476,
				-27.86819709054896, 26.79087344681326, -13.43711081485123,
				-0.66023612948173, 6.03658091814935, -4.24926577030310,
				1.40829268709186, -0.19480852628112,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99406737810867, -1.98813475621734, 0.99406737810867},
			A: []float64{1.00000000000000, -1.98809955990514, 0.98816995252954},
		},
	},
	{
		Rate: 96000,
		Yule: Coefficients{
			B: []float64{
				0.00588138296683, -0.01613559730421, 0.02184798954216,
				-0.01742490405317, 0.00464635643780, 0.01117772513205,
				-0.02123865824368, 0.01959354413350, -0.01079720643523,
				0.00352183686289, -0.00063124341421,
			},
			A: []float64{
				1.00000000000000, -5.97808823642008, 16.21362507964068,
				-25.72923730652599, 25.40470663139513, -14.66166287771134,
				2.81597484359752, 2.51447125969733, -2.23575306985286,
				0.75788151036791, -0.10078025199029,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99308203517541, -1.98616407035082, 0.99308203517541},
			A: []float64{1.00000000000000, -1.98611621154089, 0.98621192916075},
		},
	},
	{
		Rate: 88200,
		Yule: Coefficients{
			B: []float64{
				0.02667482047416, -0.11377479336097, 0.23063167910965,
				-0.30726477945593, 0.33188520686529, -0.33862680249063,
				0.31807161531340, -0.23730796929880, 0.12273894790371,
				-0.03840017967282, 0.00549673387936,
			},
			A: []float64{
				1.00000000000000, -6.31836451657302, 18.31351310801799,
				-31.88210014815921, 36.53792146976740, -28.23393036467559,
				14.24725258227189, -4.04670980012854, 0.18865757280515,
				0.25420333563908, -0.06012333531065,
			},
		},
		Butter: Coefficients{
			B: []float64{0.99247255046129, -1.98494510092259, 0.99247255046129},
			A: []float64{1.00000000000000, -1.98488843762335, 0.98500176422183},
		},
	},
	{
		Rate: 64000,
		Yule: Coefficients{
			B: []float64{
				0.02613056568174, -0.08128786488109, 0.14937282347325,
				-0.21695711675126, 0.25010286673402, -0.23162283619278,
				0.17424041833052, -0.10299599216680, 0.04258696481981,
				-0.00977952936493, 0.00105325558889,
			},
			A: []float64{
				1.00000000000000, -5.73625477092119, 16.15249794355035,
				-29.68654912464508, 39.55706155674083, -39.82524556246253,
				30.50605345013009, -17.43051772821245, 7.05154573908017,
				-1.80783839720514, 0.22127840210813,
			},
		},
		Butter: Coefficients{
			B: []float64{0.98964101933472, -1.97928203866944, 0.98964101933472},
			A: []float64{1.00000000000000, -1.97917472731009, 0.97938935002880},
		},
	},
	{
		Rate: 56000,
		Yule: Coefficients{
			B: []float64{
				0.03144914734085, -0.06151729206963, 0.08066788708145,
				-0.09737939921516, 0.08943210803999, -0.06989984672010,
				0.04926972841044, -0.03161257848451, 0.01456837493506,
				-0.00316015108496, 0.00132807215875,
			},
			A: []float64{
				1.00000000000000, -4.87377313090032, 12.03922160140209,
				-20.10151118381395, 25.10388534415171, -24.29065560815903,
				18.27158469090663, -10.45249552560593, 4.30319491872003,
				-1.13716992070185, 0.14510733527035,
			},
		},
		Butter: Coefficients{
			B: []float64{0.98816995007392, -1.97633990014784, 0.98816995007392},
			A: []float64{1.00000000000000, -1.97619994516973, 0.97647985512594},
		},
	},
	{
		Rate: 48000,
		Yule: Coefficients{
			B: []float64{
				0.03857599435200, -0.02160367184185, -0.00123395316851,
				-0.00009291677959, -0.01655260341619, 0.02161526843274,
				-0.02074045215285, 0.00594298065125, 0.00306428023191,
				0.00012025322027, 0.00288463683916,
			},
			A: []float64{
				1.00000000000000, -3.84664617118067, 7.81501653005538,
				-11.34170355132042, 13.05504219327545, -12.28759895145294,
				9.48293806319790, -5.87257861775999, 2.75465861874613,
				-0.86984376593551, 0.13919314567432,
			},
		},
		Butter: Coefficients{
			B: []float64{0.98621192462708, -1.97242384925416, 0.98621192462708},
			A: []float64{1.00000000000000, -1.97223372919527, 0.97261396931306},
		},
	},
	{
		Rate: 44100,
		Yule: Coefficients{
			B: []float64{
				0.05418656406430, -0.02911007808948, -0.00848709379851,
				-0.00851165645469, -0.00834990904936, 0.02245293253339,
				-0.02596338512915, 0.01624864962975, -0.00240879051584,
				0.00674613682247, -0.00187763777362,
			},
			A: []float64{
				1.00000000000000, -3.47845948550071, 6.36317777566148,
				-8.54751527471874, 9.47693607801280, -8.81498681370155,
				6.85401540936998, -4.39470996079559, 2.19611684890774,
				-0.75104302451432, 0.13149317958808,
			},
		},
		Butter: Coefficients{
			B: []float64{0.98500175787242, -1.97000351574484, 0.98500175787242},
			A: []float64{1.00000000000000, -1.96977855582618, 0.97022847566350},
		},
	},
	// The 37.8 kHz Yule-Walker stage is a least-squares fit to the 44.1 kHz
	// response below 18.9 kHz.
	{
		Rate: 37800,
		Yule: Coefficients{
			B: []float64{
				0.09853249371282, 0.00786443955522, -0.04925927016322,
				-0.03997275594774, 0.01319987123306, -0.00497378260601,
				-0.00645973115875, 0.01797742611910, 0.00979748536069,
				0.00247045530005, -0.00201928288942,
			},
			A: []float64{
				1.00000000000000, -2.19458733166832, 2.46590856307054,
				-2.36323532631526, 2.39906167226526, -2.20720051827164,
				1.78832475584604, -1.35198485398408, 0.87542927456827,
				-0.39391090326337, 0.09286476699075,
			},
		},
		Butter: Coefficients{
			B: []float64{0.98252400815195, -1.96504801630391, 0.98252400815195},
			A: []float64{1.00000000000000, -1.96474258269041, 0.96535344991740},
		},
	},
	{
		Rate: 32000,
		Yule: Coefficients{
			B: []float64{
				0.15457299681924, -0.09331049056315, -0.06247880153653,
				0.02163541888798, -0.05588393329856, 0.04781476674921,
				0.00222312597743, 0.03174092540049, -0.01390589421898,
				0.00651420667831, -0.00881362733839,
			},
			A: []float64{
				1.00000000000000, -2.37898834973084, 2.84868151156327,
				-2.64577170229825, 2.23697657451713, -1.67148153367602,
				1.00595954808547, -0.45953458054983, 0.16378164858596,
				-0.05032077717131, 0.02347897407020,
			},
		},
		Butter: Coefficients{
			B: []float64{0.97938932735214, -1.95877865470428, 0.97938932735214},
			A: []float64{1.00000000000000, -1.95835380975398, 0.95920349965459},
		},
	},
	{
		Rate: 24000,
		Yule: Coefficients{
			B: []float64{
				0.30296907319327, -0.22613988682123, -0.08587323730772,
				0.03282930172664, -0.00915702933434, -0.02364141202522,
				-0.00584456039913, 0.06276101321749, -0.00000828086748,
				0.00205861885564, -0.02950134983287,
			},
			A: []float64{
				1.00000000000000, -1.61273165137247, 1.07977492259970,
				-0.25656257754070, -0.16276719120440, -0.22638893773906,
				0.39120800788284, -0.22138138954925, 0.04500235387352,
				0.02005851806501, 0.00302439095741,
			},
		},
		Butter: Coefficients{
			B: []float64{0.97531843204928, -1.95063686409857, 0.97531843204928},
			A: []float64{1.00000000000000, -1.95002759149878, 0.95124613669835},
		},
	},
	{
		Rate: 22050,
		Yule: Coefficients{
			B: []float64{
				0.33642304856132, -0.25572241425570, -0.11828570177555,
				0.11921148675203, -0.07834489609479, -0.00469977914380,
				-0.00589500224440, 0.05724228140351, 0.00832043980773,
				-0.01635381384540, -0.01760176568150,
			},
			A: []float64{
				1.00000000000000, -1.49858979367799, 0.87350271418188,
				0.12205022308084, -0.80774944671438, 0.47854794562326,
				-0.12453458140019, -0.04067510197014, 0.08333755284107,
				-0.04237348025746, 0.02977207319925,
			},
		},
		Butter: Coefficients{
			B: []float64{0.97316523498161, -1.94633046996323, 0.97316523498161},
			A: []float64{1.00000000000000, -1.94561023566527, 0.94705070426118},
		},
	},
	{
		Rate: 18900,
		Yule: Coefficients{
			B: []float64{
				0.38524531015142, -0.27682212062067, -0.09980181488805,
				0.09951486755646, -0.08934020156622, -0.00322369330199,
				-0.00110329090689, 0.03784509844682, 0.01683906213303,
				-0.01147039862572, -0.01941767987192,
			},
			A: []float64{
				1.00000000000000, -1.29708918404534, 0.90399339674203,
				-0.29613799017877, -0.42326645916207, 0.37934887402200,
				-0.37919795944938, 0.23410283284785, -0.03892971758879,
				0.00403009552351, 0.03640166626278,
			},
		},
		Butter: Coefficients{
			B: []float64{0.96535326815829, -1.93070653631658, 0.96535326815829},
			A: []float64{1.00000000000000, -1.92950577983524, 0.93190729279793},
		},
	},
	{
		Rate: 16000,
		Yule: Coefficients{
			B: []float64{
				0.44915256608450, -0.14351757464547, -0.22784394429749,
				-0.01419140100551, 0.04078262797139, -0.12398163381748,
				0.04097565135648, 0.10478503600251, 0.01863887810927,
				-0.03193428438915, 0.00541907748707,
			},
			A: []float64{
				1.00000000000000, -0.62820619233671, 0.29661783706366,
				-0.37256372942400, 0.00213767857124, -0.42029820170918,
				0.22199650564824, 0.00613424350682, 0.06747620744683,
				0.05784820375801, 0.03222754072173,
			},
		},
		Butter: Coefficients{
			B: []float64{0.96454515552826, -1.92909031105652, 0.96454515552826},
			A: []float64{1.00000000000000, -1.92783286977036, 0.93034775234268},
		},
	},
	{
		Rate: 12000,
		Yule: Coefficients{
			B: []float64{
				0.56619470757641, -0.75464456939302, 0.16242137742230,
				0.16744243493672, -0.18901604199609, 0.30931782841830,
				-0.27562961986224, 0.00647310677246, 0.08647503780351,
				-0.03788984554840, -0.00588215443421,
			},
			A: []float64{
				1.00000000000000, -1.04800335126349, 0.29156311971249,
				-0.26806001042947, 0.00819999645858, 0.45054734505008,
				-0.33032403314006, 0.06739368333110, -0.04784254229033,
				0.01639907836189, 0.01807364323573,
			},
		},
		Butter: Coefficients{
			B: []float64{0.96009142950541, -1.92018285901082, 0.96009142950541},
			A: []float64{1.00000000000000, -1.91858953033784, 0.92177618768381},
		},
	},
	{
		Rate: 11025,
		Yule: Coefficients{
			B: []float64{
				0.58100494960553, -0.53174909058578, -0.14289799034253,
				0.17520704835522, 0.02377945217615, 0.15558449135573,
				-0.25344790059353, 0.01628462406333, 0.06920467763959,
				-0.03721611395801, -0.00749618797172,
			},
			A: []float64{
				1.00000000000000, -0.51035327095184, -0.31863563325245,
				-0.20256413484477, 0.14728154134330, 0.38952639978999,
				-0.23313271880868, -0.05246019024463, -0.02505961724053,
				0.02442357316099, 0.01818801111503,
			},
		},
		Butter: Coefficients{
			B: []float64{0.95856916599601, -1.91713833199203, 0.95856916599601},
			A: []float64{1.00000000000000, -1.91542108074780, 0.91885558323625},
		},
	},
	{
		Rate: 8000,
		Yule: Coefficients{
			B: []float64{
				0.53648789255105, -0.42163034350696, -0.00275953611929,
				0.04267842219415, -0.10214864179676, 0.14590772289388,
				-0.02459864859345, -0.11202315195388, -0.04060034127000,
				0.04788665548180, -0.02217936801134,
			},
			A: []float64{
				1.00000000000000, -0.25049871956020, -0.43193942311114,
				-0.03424681017675, -0.04678328784242, 0.26408300200955,
				0.15113130533216, -0.17556493366449, -0.18823009262115,
				0.05477720428674, 0.04704409688120,
			},
		},
		Butter: Coefficients{
			B: []float64{0.94597685600279, -1.89195371200558, 0.94597685600279},
			A: []float64{1.00000000000000, -1.88903307939452, 0.89487434461664},
		},
	},
}
