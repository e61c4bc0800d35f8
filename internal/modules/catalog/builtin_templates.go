package catalog

// builtinTemplates is the authored diagnostic template table. Order matters:
// equal keyword scores resolve to the earlier template.
func builtinTemplates() []Template {
	return []Template{
		{
			ID: "battery_dead",
			Keywords: []string{
				"won't start",
				"clicking sound",
				"dashboard lights dim",
				"headlights weak",
				"jump start",
			},
			Diagnosis: "Battery Dead or Weak",
			ProbableCauses: []string{
				"Battery age (3+ years)",
				"Alternator not charging",
				"Parasitic drain",
				"Corroded terminals",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			PriceService:       ServiceBatteryReplacement,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Hot weather in Nairobi accelerates battery aging. Most batteries last 2-3 years vs 4-5 in cooler climates.",
		},
		{
			ID: "battery_intermittent",
			Keywords: []string{
				"sometimes won't start",
				"starts after few tries",
				"morning start problem",
			},
			Diagnosis: "Weak Battery or Bad Connection",
			ProbableCauses: []string{
				"Battery losing charge",
				"Loose/corroded terminals",
				"Faulty alternator",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check battery terminals for corrosion (white powder)",
				"Tighten terminal connections",
				"If problem persists, test battery voltage (should be 12.6V when off)",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Nairobi dust can cause terminal corrosion faster than other climates.",
		},
		{
			ID: "engine_overheat",
			Keywords: []string{
				"temperature gauge high",
				"steam from hood",
				"engine hot",
				"coolant warning",
			},
			Diagnosis: "Engine Overheating",
			ProbableCauses: []string{
				"Low coolant",
				"Radiator leak",
				"Thermostat stuck",
				"Water pump failure",
				"Blocked radiator",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "DO NOT open radiator cap when hot. Risk of severe burns. Let engine cool for 30+ minutes.",
			PriceService:       ServiceRadiator,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Nairobi traffic (stop-and-go) causes overheating faster than highway driving. Check coolant weekly.",
		},
		{
			ID: "brake_noise",
			Keywords: []string{
				"squeaking brakes",
				"grinding noise",
				"brake sound",
			},
			Diagnosis: "Worn Brake Pads",
			ProbableCauses: []string{
				"Brake pads worn to metal",
				"Dust/debris on pads",
				"Cheap aftermarket pads",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Squeaking = warning. Grinding = DANGER. Get checked immediately if grinding.",
			PriceService:       ServiceBrakePads,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Kenyan roads (dust, potholes) wear brakes faster. Inspect every 10,000 km.",
		},
		{
			ID: "brake_soft",
			Keywords: []string{
				"soft brake pedal",
				"spongy brakes",
				"brake goes to floor",
			},
			Diagnosis: "Brake System Problem (Fluid or Air)",
			ProbableCauses: []string{
				"Low brake fluid",
				"Air in brake lines",
				"Brake fluid leak",
				"Master cylinder failure",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "SAFETY CRITICAL. Do not drive if brakes feel soft. Risk of brake failure.",
			PriceService:       ServiceBrakePads,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Brake fluid absorbs moisture over time. Change every 2 years in Nairobi humidity.",
		},
		{
			ID: "alternator_failure",
			Keywords: []string{
				"battery light on",
				"lights dimming",
				"radio cutting out",
				"dashboard flickering",
			},
			Diagnosis: "Alternator Not Charging Battery",
			ProbableCauses: []string{
				"Alternator worn out",
				"Bad voltage regulator",
				"Broken alternator belt",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Car will eventually stop running when battery drains completely. Get checked soon.",
			PriceService:       ServiceAlternator,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Alternators typically last 80,000-150,000 km. Nairobi stop-and-go traffic stresses them.",
		},
		{
			ID: "starter_motor",
			Keywords: []string{
				"clicking but won't turn over",
				"engine not cranking",
				"starter click",
			},
			Diagnosis: "Starter Motor Failure",
			ProbableCauses: []string{
				"Worn starter motor",
				"Starter solenoid failure",
				"Electrical connection issue",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			PriceService:       ServiceStarterMotor,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Starters last 100,000-150,000 km. Repeated short trips (like Nairobi traffic) wear them faster.",
		},
		{
			ID: "transmission_slip",
			Keywords: []string{
				"gears slipping",
				"transmission not shifting",
				"delayed engagement",
				"burning smell",
			},
			Diagnosis: "Transmission Problem",
			ProbableCauses: []string{
				"Low transmission fluid",
				"Worn clutch (manual)",
				"Transmission overheating",
				"Internal wear",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Transmission repairs are expensive (KES 80,000-200,000+). Get proper diagnosis before proceeding.",
			PriceService:       ServiceTransmission,
			Confidence:         ConfidenceLow,
			KenyaContext:       "Automatic transmissions require specialist diagnosis. Don't trust general mechanics for this.",
		},
		{
			ID: "oil_leak",
			Keywords: []string{
				"oil under car",
				"oil dripping",
				"oil smell",
				"low oil",
			},
			Diagnosis: "Engine Oil Leak",
			ProbableCauses: []string{
				"Worn gaskets",
				"Loose drain plug",
				"Damaged oil pan",
				"Valve cover leak",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Small leaks can become big problems. Running engine low on oil causes catastrophic damage.",
			PriceService:       ServiceOilChange,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Check oil weekly in Nairobi heat. Hot weather thins oil, accelerating wear.",
		},
		{
			ID: "flat_tire",
			Keywords: []string{
				"flat tire",
				"tire puncture",
				"tire pressure low",
				"tire warning light",
			},
			Diagnosis: "Flat or Punctured Tire",
			ProbableCauses: []string{
				"Nail/screw puncture",
				"Valve stem leak",
				"Tire age/damage",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        true,
			DIYSteps: []string{
				"Install spare tire if you have one",
				"Drive slowly (<80 km/h) to nearest repair shop",
				"Get professional repair/replacement",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceHigh,
			KenyaContext: "Kenyan roads (construction debris, potholes) cause frequent punctures. Carry spare + jack.",
		},
		{
			ID: "engine_misfire",
			Keywords: []string{
				"engine shaking",
				"rough idle",
				"check engine light",
				"loss of power",
			},
			Diagnosis: "Engine Misfire",
			ProbableCauses: []string{
				"Spark plugs worn",
				"Ignition coil failure",
				"Fuel injector clog",
				"Vacuum leak",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Poor quality fuel in some Kenyan stations can cause misfires. Use reputable fuel stations.",
		},
		{
			ID: "suspension_noise",
			Keywords: []string{
				"clunking noise",
				"rattling over bumps",
				"suspension noise",
			},
			Diagnosis: "Worn Suspension Components",
			ProbableCauses: []string{
				"Worn shock absorbers",
				"Damaged struts",
				"Broken springs",
				"Loose parts",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Kenyan potholes destroy suspension faster than smooth roads. Inspect every 20,000 km.",
		},
		{
			ID: "loud_exhaust",
			Keywords: []string{
				"loud exhaust",
				"exhaust noise",
				"rumbling sound",
			},
			Diagnosis: "Exhaust System Leak or Damage",
			ProbableCauses: []string{
				"Rusted muffler",
				"Broken exhaust pipe",
				"Loose clamps",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Exhaust leaks can allow carbon monoxide into cabin. Get fixed soon.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Nairobi humidity accelerates exhaust rust. Mufflers typically last 3-5 years.",
		},
		{
			ID: "ac_not_cooling",
			Keywords: []string{
				"ac not cold",
				"air conditioning weak",
				"ac blowing warm",
			},
			Diagnosis: "Air Conditioning Not Cooling",
			ProbableCauses: []string{
				"Low refrigerant",
				"Compressor failure",
				"Blocked condenser",
				"Electrical issue",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "AC is essential in Nairobi heat. Regas every 2-3 years. Compressor replacement is expensive.",
		},
		{
			ID: "steering_heavy",
			Keywords: []string{
				"hard to steer",
				"heavy steering",
				"steering difficult",
			},
			Diagnosis: "Power Steering Problem",
			ProbableCauses: []string{
				"Low power steering fluid",
				"Power steering pump failure",
				"Belt issue",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Check power steering fluid monthly. Leaks are common after 100,000 km.",
		},
		{
			ID: "poor_fuel_economy",
			Keywords: []string{
				"using too much fuel",
				"bad mileage",
				"fuel consumption high",
			},
			Diagnosis: "Poor Fuel Economy",
			ProbableCauses: []string{
				"Clogged air filter",
				"Oxygen sensor failure",
				"Tire pressure low",
				"Driving habits",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check tire pressure (inflate to recommended PSI)",
				"Replace air filter if dirty",
				"Drive smoothly (avoid hard acceleration)",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceLow,
			KenyaContext: "Nairobi traffic (stop-and-go) naturally increases fuel use by 30-50% vs highway.",
		},
		{
			ID: "window_stuck",
			Keywords: []string{
				"window won't roll up",
				"power window not working",
				"window stuck",
			},
			Diagnosis: "Power Window Failure",
			ProbableCauses: []string{
				"Window motor failure",
				"Window regulator broken",
				"Electrical issue",
				"Switch failure",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Window regulators fail more in dusty conditions. Keep windows clean.",
		},
		{
			ID: "check_engine_light",
			Keywords: []string{
				"check engine light",
				"engine warning light",
				"malfunction indicator",
			},
			Diagnosis: "Check Engine Light On",
			ProbableCauses: []string{
				"Many possible causes - requires diagnostic scan",
				"Loose gas cap (common)",
				"Oxygen sensor",
				"Catalytic converter",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check if gas cap is tight",
				"If light persists after 3 drives, get diagnostic scan",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceLow,
			KenyaContext: "Don't ignore check engine light. Small issues become expensive if left unfixed.",
		},
		{
			ID: "car_wont_start_fuel",
			Keywords: []string{
				"won't start",
				"cranks but won't start",
				"turns over but won't start",
				"no fuel",
			},
			Diagnosis: "Fuel System Problem",
			ProbableCauses: []string{
				"Empty fuel tank (gauge faulty)",
				"Fuel pump failure",
				"Clogged fuel filter",
				"Fuel injector issue",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check fuel gauge - is there actually fuel?",
				"Listen for fuel pump hum when you turn key (2-second buzz)",
				"If no buzz, fuel pump may be dead",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Some Kenyan fuel stations have contaminated fuel. If you just refueled, bad fuel could be the cause.",
		},
		{
			ID: "headlights_dim",
			Keywords: []string{
				"dim headlights",
				"lights weak",
				"lights flickering",
			},
			Diagnosis: "Electrical System Problem",
			ProbableCauses: []string{
				"Alternator weak",
				"Battery low",
				"Corroded connections",
				"Bad ground wire",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Clean battery terminals with baking soda + water",
				"Check alternator belt for looseness",
				"Test voltage at battery (should be 13.5-14.5V when running)",
			},
			PriceService: ServiceAlternator,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Dim lights at night are dangerous on Kenyan roads. Don't delay this repair.",
		},
		{
			ID: "coolant_leak",
			Keywords: []string{
				"coolant leak",
				"green fluid under car",
				"pink fluid leak",
				"radiator leak",
			},
			Diagnosis: "Coolant Leak",
			ProbableCauses: []string{
				"Radiator crack",
				"Hose leak",
				"Water pump leak",
				"Heater core leak",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "Driving with coolant leak will cause overheating. Engine damage possible. Get towed if far from mechanic.",
			PriceService:       ServiceRadiator,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Nairobi's heat accelerates coolant evaporation. Check coolant level weekly.",
		},
		{
			ID: "clutch_slipping",
			Keywords: []string{
				"clutch slipping",
				"revs high but car slow",
				"burning smell clutch",
			},
			Diagnosis: "Worn Clutch",
			ProbableCauses: []string{
				"Clutch disc worn",
				"Pressure plate weak",
				"Hydraulic system leak",
				"Flywheel damage",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Clutch replacement is expensive (KES 30,000-80,000). Get diagnosed before it fails completely.",
			PriceService:       ServiceTransmission,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Nairobi traffic (constant stop-and-go) wears clutches faster. Typical life: 80,000-120,000 km.",
		},
		{
			ID: "abs_light",
			Keywords: []string{
				"abs light on",
				"abs warning",
				"brake light on",
			},
			Diagnosis: "ABS System Problem",
			ProbableCauses: []string{
				"ABS sensor failure",
				"Low brake fluid",
				"ABS module issue",
				"Wiring problem",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Brakes still work, but ABS (anti-lock) may not function in emergency. Get checked soon.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Kenyan roads (dust, water) damage ABS sensors. Clean sensors during brake service.",
		},
		{
			ID: "airbag_light",
			Keywords: []string{
				"airbag light",
				"srs light",
				"airbag warning",
			},
			Diagnosis: "Airbag System Fault",
			ProbableCauses: []string{
				"Airbag sensor failure",
				"Wiring issue",
				"Airbag module problem",
				"Seatbelt sensor",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Airbags may not deploy in accident. Safety critical for passengers.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceLow,
			KenyaContext:       "Airbag systems need specialized diagnostics. Don't trust general mechanics for this.",
		},
		{
			ID: "loss_of_power",
			Keywords: []string{
				"loss of power",
				"car slow",
				"no acceleration",
				"sluggish",
			},
			Diagnosis: "Engine Performance Problem",
			ProbableCauses: []string{
				"Clogged air filter",
				"Fuel filter clogged",
				"Turbo failure (if turbocharged)",
				"Exhaust blockage",
				"Transmission slipping",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check air filter - if black/dirty, replace (KES 500-1,500)",
				"Check for exhaust smoke (blue=oil, white=coolant, black=fuel rich)",
				"Test with another hill - if struggles on all hills, likely engine problem",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceLow,
			KenyaContext: "Kenyan fuel quality varies. Use reputable stations (Shell, Total, Rubis) for better performance.",
		},
		{
			ID: "black_smoke",
			Keywords: []string{
				"black smoke",
				"dark exhaust",
				"soot from exhaust",
			},
			Diagnosis: "Rich Fuel Mixture (Too Much Fuel)",
			ProbableCauses: []string{
				"Faulty oxygen sensor",
				"Dirty air filter",
				"Fuel injector stuck open",
				"MAF sensor dirty",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Replace air filter",
				"Check for vacuum leaks",
				"If continues, needs diagnostic scan",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Black smoke = wasting fuel. You're burning extra KES 500-1,000 per month. Fix it.",
		},
		{
			ID: "white_smoke",
			Keywords: []string{
				"white smoke",
				"steam from exhaust",
				"coolant smell",
			},
			Diagnosis: "Coolant Burning (Head Gasket Failure)",
			ProbableCauses: []string{
				"Blown head gasket",
				"Cracked cylinder head",
				"Cracked engine block (rare)",
			},
			RecommendedService: CarSpecific,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "CRITICAL: This is expensive repair (KES 60,000-150,000). Stop driving immediately to prevent catastrophic engine damage.",
			PriceService:       ServiceTransmission,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Overheating causes head gasket failure. If you've been driving with hot engine, this is likely.",
		},
		{
			ID: "blue_smoke",
			Keywords: []string{
				"blue smoke",
				"oil smoke",
				"burning oil smell",
			},
			Diagnosis: "Engine Burning Oil",
			ProbableCauses: []string{
				"Worn piston rings",
				"Valve seal failure",
				"PCV valve stuck",
				"Turbo seal leak",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Engine wear. Eventually needs rebuild. Monitor oil level weekly and top up as needed.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "High-mileage cars (200,000+ km) commonly burn oil. Budget KES 1,000-3,000/month for oil top-ups.",
		},
		{
			ID: "hard_to_start",
			Keywords: []string{
				"hard to start",
				"takes time to start",
				"slow crank",
			},
			Diagnosis: "Starting System Problem",
			ProbableCauses: []string{
				"Weak battery",
				"Dirty battery terminals",
				"Starter motor wearing",
				"Fuel system issue",
				"Ignition switch problem",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Clean battery terminals",
				"Check battery voltage (should be 12.6V)",
				"Try jump start - if starts immediately, battery is weak",
			},
			PriceService: ServiceBatteryReplacement,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Morning hard starts are common with old batteries. Test battery every 2 years.",
		},
		{
			ID: "vibration_idle",
			Keywords: []string{
				"shaking at idle",
				"rough idle",
				"vibration when stopped",
			},
			Diagnosis: "Engine Mount or Idle Problem",
			ProbableCauses: []string{
				"Worn engine mounts",
				"Vacuum leak",
				"Spark plug misfire",
				"Idle control valve dirty",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Kenyan potholes wear engine mounts faster. Inspect every 50,000 km.",
		},
		{
			ID: "vibration_speed",
			Keywords: []string{
				"shaking at speed",
				"vibration highway",
				"wobble at 100km",
			},
			Diagnosis: "Wheel Balance or Alignment Problem",
			ProbableCauses: []string{
				"Unbalanced wheels",
				"Bent rim",
				"Worn suspension",
				"Alignment off",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			DIYSteps: []string{
				"Check tires for bulges or uneven wear",
				"Rotate tires to see if vibration changes location",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceHigh,
			KenyaContext: "Kenyan potholes knock wheels out of balance. Balance + align every 10,000 km (KES 2,000-4,000).",
		},
		{
			ID: "knocking_engine",
			Keywords: []string{
				"knocking sound engine",
				"pinging",
				"detonation",
				"engine knock",
			},
			Diagnosis: "Engine Knock (Pre-Ignition)",
			ProbableCauses: []string{
				"Low-quality fuel",
				"Carbon buildup",
				"Wrong spark plugs",
				"Timing problem",
				"Overheating",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Try higher octane fuel (95 instead of 91)",
				"Use fuel injector cleaner",
				"If continues, needs diagnosis",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Some Kenyan stations have low-quality fuel. Switch to Shell V-Power or Total Excellium if knocking.",
		},
		{
			ID: "grinding_noise",
			Keywords: []string{
				"grinding noise",
				"metal on metal",
				"scraping sound",
			},
			Diagnosis: "Brake Metal-to-Metal Contact",
			ProbableCauses: []string{
				"Brake pads completely worn",
				"Brake disc damaged",
				"Caliper seized",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "DANGER: Braking ability severely compromised. Get fixed TODAY. Do not drive long distances.",
			PriceService:       ServiceBrakePads,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Metal-to-metal = brake failure imminent. Kenyan traffic requires full braking ability.",
		},
		{
			ID: "whistling_sound",
			Keywords: []string{
				"whistling sound",
				"high pitched noise",
				"squealing belt",
			},
			Diagnosis: "Belt Problem",
			ProbableCauses: []string{
				"Loose serpentine belt",
				"Worn belt",
				"Misaligned pulley",
				"Bearing failure",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Belts wear faster in dusty Kenyan conditions. Inspect every 30,000 km.",
		},
		{
			ID: "radio_cutting_out",
			Keywords: []string{
				"radio cuts out",
				"electronics flickering",
				"dashboard resets",
			},
			Diagnosis: "Electrical System Problem",
			ProbableCauses: []string{
				"Loose battery connection",
				"Alternator failing",
				"Faulty ground wire",
				"Voltage regulator issue",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Tighten battery terminals",
				"Check ground wire connection (black wire from battery to engine block)",
				"Test voltage while running (should be 13.5-14.5V)",
			},
			PriceService: ServiceAlternator,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Electrical gremlins are common in high-mileage Kenyan cars. Start with battery connections.",
		},
		{
			ID: "power_steering_leak",
			Keywords: []string{
				"power steering leak",
				"red fluid leak",
				"steering fluid low",
			},
			Diagnosis: "Power Steering Leak",
			ProbableCauses: []string{
				"Hose leak",
				"Rack and pinion seal",
				"Power steering pump seal",
				"Reservoir crack",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Running low on power steering fluid makes steering very heavy. Top up weekly until fixed.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Check power steering fluid monthly (red/pink fluid in small reservoir near engine).",
		},
		{
			ID: "transmission_leak",
			Keywords: []string{
				"transmission leak",
				"red fluid under car",
				"gearbox leak",
			},
			Diagnosis: "Transmission Fluid Leak",
			ProbableCauses: []string{
				"Pan gasket leak",
				"Seal failure",
				"Cooler line leak",
				"Torque converter seal",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Low transmission fluid causes shifting problems and eventual transmission failure (KES 150,000+ repair).",
			PriceService:       ServiceTransmission,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Automatic transmissions are sensitive. Don't ignore leaks. Top up weekly if leaking.",
		},
		{
			ID: "oxygen_sensor",
			Keywords: []string{
				"check engine light",
				"o2 sensor",
				"oxygen sensor",
				"emissions",
			},
			Diagnosis: "Oxygen Sensor Failure",
			ProbableCauses: []string{
				"Sensor worn out (normal at 100,000+ km)",
				"Exhaust leak affecting sensor",
				"Contaminated by bad fuel",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "O2 sensors fail around 120,000 km. Symptoms: poor fuel economy, check engine light. KES 8,000-15,000 to replace.",
		},
		{
			ID: "diesel_hard_start",
			Keywords: []string{
				"diesel hard to start",
				"glow plugs",
				"white smoke diesel",
				"diesel cold start",
			},
			Diagnosis: "Glow Plug or Fuel System Issue",
			ProbableCauses: []string{
				"Worn glow plugs",
				"Fuel filter clogged",
				"Air in fuel system",
				"Fuel pump weak",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Kenyan diesel quality varies. Use reputable stations. Replace fuel filter every 20,000 km.",
		},
		{
			ID:        "diesel_smoke",
			Keywords:  []string{"black smoke diesel", "excessive diesel smoke"},
			Diagnosis: "Diesel Injection Problem",
			ProbableCauses: []string{
				"Injector timing off",
				"Turbo failure",
				"Air filter clogged",
				"EGR valve stuck",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Black smoke = incomplete combustion = wasting fuel. Also illegal in Kenya (environmental laws).",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Diesel engines need specialists. Don't trust general mechanics for injection systems.",
		},
		{
			ID: "hybrid_warning",
			Keywords: []string{
				"hybrid warning light",
				"triangle warning",
				"hybrid battery",
				"ready light",
			},
			Diagnosis: "Hybrid System Problem",
			ProbableCauses: []string{
				"Hybrid battery degradation",
				"Inverter issue",
				"12V battery weak",
				"Cooling system problem",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Hybrid systems require specialized diagnosis. Find mechanic with hybrid training.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceLow,
			KenyaContext:       "Hybrid battery replacement is expensive (KES 300,000-600,000). Get proper diagnosis before assuming battery failure.",
		},
		{
			ID: "tpms_light",
			Keywords: []string{
				"tire pressure light",
				"tpms warning",
				"low tire pressure",
			},
			Diagnosis: "Low Tire Pressure or TPMS Sensor",
			ProbableCauses: []string{
				"Tire pressure actually low",
				"TPMS sensor battery dead",
				"Sensor damaged",
				"Spare tire low (if monitored)",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check all tire pressures (including spare)",
				"Inflate to recommended PSI (door jamb sticker)",
				"Drive 10 minutes - light should turn off",
				"If stays on, sensor issue",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceHigh,
			KenyaContext: "Kenyan roads cause slow leaks. Check tire pressure weekly. Proper pressure improves fuel economy.",
		},
		{
			ID: "key_fob_not_working",
			Keywords: []string{
				"key fob dead",
				"remote not working",
				"keyless entry failed",
			},
			Diagnosis: "Key Fob Battery Dead or Issue",
			ProbableCauses: []string{
				"Fob battery dead (most common)",
				"Fob needs reprogramming",
				"Receiver in car faulty",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Replace fob battery (CR2032 or similar, KES 100-200 from supermarket)",
				"Hold fob closer to car when pressing",
				"Use physical key to unlock if fob completely dead",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceHigh,
			KenyaContext: "Fob batteries last 2-4 years. Keep spare battery in wallet. Physical key works even if fob dead.",
		},
		{
			ID: "maf_sensor",
			Keywords: []string{
				"rough idle",
				"hesitation",
				"poor acceleration",
				"black smoke",
				"high fuel consumption",
			},
			Diagnosis: "MAF (Mass Air Flow) Sensor Problem",
			ProbableCauses: []string{
				"Dirty MAF sensor",
				"Failed MAF sensor",
				"Air filter very dirty",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Buy MAF sensor cleaner (KES 800-1,200)",
				"Remove sensor (usually 2 screws)",
				"Spray cleaner on sensor wire",
				"Let dry 10 minutes",
				"Reinstall",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceMedium,
			KenyaContext: "Nairobi dust clogs MAF sensors faster. Clean every 30,000 km.",
		},
		{
			ID: "timing_belt",
			Keywords: []string{
				"timing belt",
				"engine wont start after service",
				"ticking sound engine",
			},
			Diagnosis: "Timing Belt Issue",
			ProbableCauses: []string{
				"Timing belt broken",
				"Timing belt due for replacement",
				"Belt jumped teeth",
			},
			RecommendedService: CarSpecific,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "CRITICAL: Broken timing belt = MAJOR engine damage (bent valves, KES 80,000-200,000 repair). Get towed immediately.",
			PriceService:       ServiceTransmission,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Replace timing belt every 80,000-100,000 km. DON'T wait for it to break. Prevention is cheaper than repair.",
		},
		{
			ID: "wiper_not_working",
			Keywords: []string{
				"wipers not working",
				"windshield wipers dead",
				"wiper motor",
			},
			Diagnosis: "Wiper System Failure",
			ProbableCauses: []string{
				"Wiper motor burned out",
				"Wiper fuse blown",
				"Wiper linkage broken",
				"Switch failure",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        true,
			DIYSteps: []string{
				"Check wiper fuse (owner's manual shows location)",
				"If fuse good, motor likely dead",
				"If raining, pour water on windshield + drive slowly",
			},
			PriceService: ServiceDiagnosticScan,
			Confidence:   ConfidenceHigh,
			KenyaContext: "Wipers critical during rainy season (March-May, Oct-Dec). Replace blades yearly (KES 1,000-2,000).",
		},
		{
			ID: "fuel_smell",
			Keywords: []string{
				"smell gas",
				"fuel smell",
				"petrol smell",
				"fuel leak",
			},
			Diagnosis: "Fuel System Leak",
			ProbableCauses: []string{
				"Fuel line leak",
				"Fuel injector leak",
				"Fuel tank crack",
				"Fuel cap seal broken",
			},
			RecommendedService: MobileMechanic,
			Urgent:             true,
			DIYPossible:        false,
			Warning:            "FIRE HAZARD: Fuel leaks are dangerous. Do not smoke near car. Do not drive long distances. Get fixed immediately.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Fuel leaks + hot engine = fire risk. Nairobi heat makes this more dangerous.",
		},
		{
			ID: "catalytic_converter",
			Keywords: []string{
				"rotten egg smell",
				"loss of power",
				"check engine light",
				"rattling under car",
			},
			Diagnosis: "Catalytic Converter Problem",
			ProbableCauses: []string{
				"Clogged catalytic converter",
				"Catalytic converter stolen (common in Kenya!)",
				"Damaged converter",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Catalytic converter theft is VERY common in Kenya. Park in secure areas. Replacement: KES 25,000-80,000.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "CRITICAL: Catalytic converter theft epidemic in Nairobi. Thieves target SUVs, Toyota Prados, VX models. Park in guarded areas.",
		},
		{
			ID: "wheel_bearing",
			Keywords: []string{
				"humming noise",
				"grinding noise wheels",
				"rumbling sound",
				"noise increases with speed",
			},
			Diagnosis: "Worn Wheel Bearing",
			ProbableCauses: []string{
				"Wheel bearing worn out",
				"Wheel bearing damaged (pothole impact)",
				"No grease in bearing",
			},
			RecommendedService: MobileMechanic,
			Urgent:             false,
			DIYPossible:        false,
			Warning:            "Worn bearings can seize or wheel can come loose. Get checked within 1 week.",
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceHigh,
			KenyaContext:       "Kenyan potholes destroy wheel bearings. Replace every 80,000-120,000 km. Cost: KES 8,000-15,000 per wheel.",
		},
		{
			ID: "heater_not_working",
			Keywords: []string{
				"heater not working",
				"no hot air",
				"ac only cold",
				"heating broken",
			},
			Diagnosis: "Heater Core or Blend Door Problem",
			ProbableCauses: []string{
				"Heater core clogged",
				"Blend door actuator failure",
				"Low coolant",
				"Thermostat stuck",
			},
			RecommendedService: CarSpecific,
			Urgent:             false,
			DIYPossible:        false,
			PriceService:       ServiceDiagnosticScan,
			Confidence:         ConfidenceMedium,
			KenyaContext:       "Heater rarely needed in Nairobi, but essential for cold mornings in higher areas (Kiambu, Limuru). Also defogs windows in rain.",
		},
	}
}
