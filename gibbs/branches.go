package gibbs

import "math"

// gibbsValue is the specific Gibbs energy itself, J/kg.
func gibbsValue(x2, x, y, z float64) float64 {
	g03 := 101.342743139674 + z*(100015.695367145 + z*(-2544.5765420363 + z*(284.517778446287 +
		z*(-33.3146754253611 + z*(4.20263108803084 + z*(-0.546428511471039)))))) + y*(5.90578347909402 +
		z*(-270.983805184062 + z*(776.153611613101 + z*(-196.51255088122 + z*(28.9796526294175 +
		z*(-2.13290083518327))))) + y*(-12357.785933039 + z*(1455.0364540468 + z*(-756.558385769359 +
		z*(273.479662323528 + z*(-55.5604063817218 + z*(4.34420671917197))))) + y*(736.741204151612 +
		z*(-672.50778314507 + z*(499.360390819152 + z*(-239.545330654412 + z*(48.8012518593872 +
		z*(-1.66307106208905))))) + y*(-148.185936433658 + z*(397.968445406972 + z*(-301.815380621876 +
		z*(152.196371733841 + z*(-26.3748377232802)))) + y*(58.0259125842571 + z*(-194.618310617595 +
		z*(120.520654902025 + z*(-55.2723052340152 + z*(6.48190668077221)))) + y*(-18.9843846514172 +
		z*(63.5113936641785 + z*(-22.2897317140459 + z*(8.17060541818112))) + y*(3.05081646487967 +
		z*(-9.63108119393062))))))))
	g08 := x2 * (1416.27648484197 + z*(-3310.49154044839 + z*(384.794152978599 + z*(-96.5324320107458 +
		z*(15.8408172766824 + z*(-2.62480156590992))))) + y*(168.072408311545 + z*(729.116529735046 +
		z*(-343.956902961561 + z*(124.687671116248 + z*(-31.656964386073 + z*(7.04658803315449))))) +
		y*(880.031352997204 + z*(-860.764303783977 + z*(337.409530269367 + z*(-178.314556207638 +
		z*(44.2040358308 + z*(-7.92001547211682))))) + y*(-225.267649263401 + z*(694.244814133268 +
		z*(-204.889641964903 + z*(113.561697840594 + z*(-11.1282734326413)))) + y*(91.4260447751259 +
		z*(-297.728741987187 + z*(74.726141138756 + z*(-36.4872919001588))) + y*(-21.6603240875311 +
		y*(2.13016970847183)))))) + x*(-2432.14662381794 + z*(199.459603073901 + z*(-52.2940909281335 +
		z*(68.0444942726459 + z*(-3.41251932441282)))) + y*(-493.407510141682 + z*(-175.292041186547 +
		z*(83.1923927801819 + z*(-29.483064349429))) + y*(-43.0664675978042 + z*(383.058066002476 +
		z*(-54.1917262517112 + z*(25.6398487389914))) + y*(-10.0227370861875 + z*(-460.319931801257) +
		y*(0.875600661808945 + z*(234.565187611355))))) + x*(2025.80115603697 + z*(-54.7919133532887 +
		z*(-4.08193978912261 + z*(-30.1755111971161))) + y*(543.835333000098 + z*(-22.6683558512829) +
		y*(-68.5572509204491 + y*(49.3667694856254 + y*(-17.1397577419788 + y*(2.49697009569508))))) +
		x*(-1091.66841042967 + z*(36.0284195611086) + y*(-196.028306689776) + x*(374.60123787784 +
		y*(36.7571622995805) + x*(-48.5891069025409))))))
	if x > 0 {
		g08 += x2 * (5812.81456626732 + 851.226734946706*y) * math.Log(x)
	}
	return g03 + g08
}

// gibbsSA is dg/dSA, J/(kg (g/kg)). NaN at zero salinity, where the
// log(x) term of the fitted form is singular.
func gibbsSA(x2, x, y, z float64) float64 {
	if x == 0 {
		return math.NaN()
	}
	g08 := 8645.36753595126 + z*(-6620.98308089678 + z*(769.588305957198 + z*(-193.0648640214916 +
		z*(31.6816345533648 + z*(-5.24960313181984))))) + y*(1187.371551569796 + z*(1458.233059470092 +
		z*(-687.913805923122 + z*(249.375342232496 + z*(-63.313928772146 + z*(14.09317606630898))))) +
		y*(1760.062705994408 + z*(-1721.528607567954 + z*(674.819060538734 + z*(-356.629112415276 +
		z*(88.4080716616 + z*(-15.84003094423364))))) + y*(-450.535298526802 + z*(1388.489628266536 +
		z*(-409.779283929806 + z*(227.123395681188 + z*(-22.2565468652826)))) + y*(182.8520895502518 +
		z*(-595.457483974374 + z*(149.452282277512 + z*(-72.9745838003176))) + y*(-43.3206481750622 +
		y*(4.26033941694366)))))) + x*(-7296.43987145382 + z*(598.378809221703 + z*(-156.8822727844005 +
		z*(204.1334828179377 + z*(-10.23755797323846)))) + y*(-1480.222530425046 + z*(-525.876123559641 +
		z*(249.5771783405457 + z*(-88.449193048287))) + y*(-129.1994027934126 + z*(1149.174198007428 +
		z*(-162.5751787551336 + z*(76.9195462169742))) + y*(-30.0682112585625 + z*(-1380.959795403771) +
		y*(2.626801985426835 + z*(703.695562834065))))) + x*(8103.20462414788 + z*(-219.1676534131548 +
		z*(-16.32775915649044 + z*(-120.7020447884644))) + y*(2175.341332000392 + z*(-90.6734234051316) +
		y*(-274.2290036817964 + y*(197.4670779425016 + y*(-68.5590309679152 + y*(9.98788038278032))))) +
		x*(-5458.34205214835 + z*(180.142097805543) + y*(-980.14153344888) + x*(2247.60742726704 +
		y*(220.542973797483) + x*(-340.1237483177863)))))
	g08 += (11625.62913253464 + 1702.453469893412*y) * math.Log(x)
	return 0.5 * sfac * g08
}

// gibbsT is dg/dt, J/(kg K).
func gibbsT(x2, x, y, z float64) float64 {
	g03 := 5.90578347909402 + z*(-270.983805184062 + z*(776.153611613101 + z*(-196.51255088122 +
		z*(28.9796526294175 + z*(-2.13290083518327))))) + y*(-24715.571866078 + z*(2910.0729080936 +
		z*(-1513.116771538718 + z*(546.959324647056 + z*(-111.1208127634436 + z*(8.68841343834394))))) +
		y*(2210.223612454836 + z*(-2017.52334943521 + z*(1498.081172457456 + z*(-718.635991963236 +
		z*(146.4037555781616 + z*(-4.98921318626715))))) + y*(-592.743745734632 + z*(1591.873781627888 +
		z*(-1207.261522487504 + z*(608.785486935364 + z*(-105.4993508931208)))) + y*(290.1295629212855 +
		z*(-973.091553087975 + z*(602.603274510125 + z*(-276.361526170076 + z*(32.40953340386105)))) +
		y*(-113.9063079085032 + z*(381.068361985071 + z*(-133.7383902842754 + z*(49.02363250908672))) +
		y*(21.35571525415769 + z*(-67.41756835751434)))))))
	g08 := x2 * (168.072408311545 + z*(729.116529735046 + z*(-343.956902961561 + z*(124.687671116248 +
		z*(-31.656964386073 + z*(7.04658803315449))))) + y*(1760.062705994408 + z*(-1721.528607567954 +
		z*(674.819060538734 + z*(-356.629112415276 + z*(88.4080716616 + z*(-15.84003094423364))))) +
		y*(-675.802947790203 + z*(2082.734442399804 + z*(-614.668925894709 + z*(340.685093521782 +
		z*(-33.3848202979239)))) + y*(365.7041791005036 + z*(-1190.914967948748 + z*(298.904564555024 +
		z*(-145.9491676006352))) + y*(-108.3016204376555 + y*(12.78101825083098))))) + x*(-493.407510141682 +
		z*(-175.292041186547 + z*(83.1923927801819 + z*(-29.483064349429))) + y*(-86.1329351956084 +
		z*(766.116132004952 + z*(-108.3834525034224 + z*(51.2796974779828))) + y*(-30.0682112585625 +
		z*(-1380.959795403771) + y*(3.50240264723578 + z*(938.26075044542)))) + x*(543.835333000098 +
		z*(-22.6683558512829) + y*(-137.1145018408982 + y*(148.1003084568762 + y*(-68.5590309679152 +
		y*(12.4848504784754)))) + x*(-196.028306689776 + x*(36.7571622995805)))))
	if x > 0 {
		g08 += 851.226734946706 * x2 * math.Log(x)
	}
	return (g03 + g08) * 0.025
}

// gibbsP is dg/dP, m3/kg. The derivative is with respect to pressure in
// Pa although p is supplied in dbar, hence the 1e-8 scale.
func gibbsP(x2, x, y, z float64) float64 {
	g03 := 100015.695367145 + z*(-5089.1530840726 + z*(853.553335338861 + z*(-133.2587017014444 +
		z*(21.0131554401542 + z*(-3.278571068826234))))) + y*(-270.983805184062 + z*(1552.307223226202 +
		z*(-589.53765264366 + z*(115.91861051767 + z*(-10.66450417591635)))) + y*(1455.0364540468 +
		z*(-1513.116771538718 + z*(820.438986970584 + z*(-222.2416255268872 + z*(21.72103359585985)))) +
		y*(-672.50778314507 + z*(998.720781638304 + z*(-718.635991963236 + z*(195.2050074375488 +
		z*(-8.31535531044525)))) + y*(397.968445406972 + z*(-603.630761243752 + z*(456.589115201523 +
		z*(-105.4993508931208))) + y*(-194.618310617595 + z*(241.04130980405 + z*(-165.8169157020456 +
		z*(25.92762672308884))) + y*(63.5113936641785 + z*(-44.5794634280918 + z*(24.51181625454336)) +
		y*(-9.63108119393062)))))))
	g08 := x2 * (-3310.49154044839 + z*(769.588305957198 + z*(-289.5972960322374 + z*(63.3632691067296 +
		z*(-13.1240078295496)))) + y*(729.116529735046 + z*(-687.913805923122 + z*(374.063013348744 +
		z*(-126.627857544292 + z*(35.23294016577245)))) + y*(-860.764303783977 + z*(674.819060538734 +
		z*(-534.943668622914 + z*(176.8161433232 + z*(-39.6000773605841)))) + y*(694.244814133268 +
		z*(-409.779283929806 + z*(340.685093521782 + z*(-44.5130937305652))) + y*(-297.728741987187 +
		z*(149.452282277512 + z*(-109.4618757004764)))))) + x*(199.459603073901 + z*(-104.588181856267 +
		z*(204.1334828179377 + z*(-13.65007729765128))) + y*(-175.292041186547 + z*(166.3847855603638 +
		z*(-88.449193048287)) + y*(383.058066002476 + z*(-108.3834525034224 + z*(76.9195462169742)) +
		y*(-460.319931801257 + y*(234.565187611355)))) + x*(-54.7919133532887 + z*(-8.16387957824522 +
		z*(-90.5265335913483)) + y*(-22.6683558512829) + x*(36.0284195611086))))
	return (g03 + g08) * 1e-8
}

// gibbsSAT is d2g/dSAdt, J/(kg K (g/kg)). NaN at zero salinity.
func gibbsSAT(x2, x, y, z float64) float64 {
	if x == 0 {
		return math.NaN()
	}
	g08 := 1187.371551569796 + z*(1458.233059470092 + z*(-687.913805923122 + z*(249.375342232496 +
		z*(-63.313928772146 + z*(14.09317606630898))))) + y*(3520.125411988816 + z*(-3443.057215135908 +
		z*(1349.638121077468 + z*(-713.258224830552 + z*(176.8161433232 + z*(-31.68006188846728))))) +
		y*(-1351.605895580406 + z*(4165.468884799608 + z*(-1229.337851789418 + z*(681.370187043564 +
		z*(-66.7696405958478)))) + y*(731.4083582010072 + z*(-2381.829935897496 + z*(597.809129110048 +
		z*(-291.8983352012704))) + y*(-216.603240875311 + y*(25.56203650166196))))) + x*(-1480.222530425046 +
		z*(-525.876123559641 + z*(249.5771783405457 + z*(-88.449193048287))) + y*(-258.3988055868252 +
		z*(2298.348396014856 + z*(-325.1503575102672 + z*(153.8390924339484))) + y*(-90.2046337756875 +
		z*(-4142.879386211313) + y*(10.50720794170734 + z*(2814.78225133626)))) + x*(2175.341332000392 +
		z*(-90.6734234051316) + y*(-548.4580073635929 + y*(592.4012338275048 + y*(-274.2361238716608 +
		y*(49.9394019139016)))) + x*(-980.14153344888 + x*(220.542973797483))))
	g08 += 1702.453469893412 * math.Log(x)
	return 0.5 * sfac * 0.025 * g08
}

// gibbsSAP is d2g/dSAdP, m3/(kg (g/kg)).
func gibbsSAP(x2, x, y, z float64) float64 {
	g08 := -6620.98308089678 + z*(1539.176611914396 + z*(-579.1945920644748 + z*(126.7265382134592 +
		z*(-26.2480156590992)))) + y*(1458.233059470092 + z*(-1375.827611846244 + z*(748.126026697488 +
		z*(-253.255715088584 + z*(70.4658803315449)))) + y*(-1721.528607567954 + z*(1349.638121077468 +
		z*(-1069.887337245828 + z*(353.6322866464 + z*(-79.2001547211682)))) + y*(1388.489628266536 +
		z*(-819.558567859612 + z*(681.370187043564 + z*(-89.0261874611304))) + y*(-595.457483974374 +
		z*(298.904564555024 + z*(-218.9237514009528)))))) + x*(598.378809221703 + z*(-313.764545568801 +
		z*(612.400448453813 + z*(-40.95023189295384))) + y*(-525.876123559641 + z*(499.1543566810914 +
		z*(-265.347579144861)) + y*(1149.174198007428 + z*(-325.1503575102672 + z*(230.7586386509226)) +
		y*(-1380.959795403771 + y*(703.695562834065)))) + x*(-219.1676534131548 + z*(-32.65551831298088 +
		z*(-362.1061343653932)) + y*(-90.6734234051316) + x*(180.142097805543)))
	return g08 * sfac * 0.5e-8
}

// gibbsTP is d2g/dtdP, m3/(kg K).
func gibbsTP(x2, x, y, z float64) float64 {
	g03 := -270.983805184062 + z*(1552.307223226202 + z*(-589.53765264366 + z*(115.91861051767 +
		z*(-10.66450417591635)))) + y*(2910.0729080936 + z*(-3026.233543077436 + z*(1640.877973941168 +
		z*(-444.4832510537744 + z*(43.4420671917197)))) + y*(-2017.52334943521 + z*(2996.162344914912 +
		z*(-2155.907975889708 + z*(585.6150223126464 + z*(-24.94606593133575)))) + y*(1591.873781627888 +
		z*(-2414.523044975008 + z*(1826.356460806092 + z*(-421.9974035724832))) + y*(-973.091553087975 +
		z*(1205.20654902025 + z*(-829.084578510228 + z*(129.6381336154442))) + y*(381.068361985071 +
		z*(-267.4767805685508 + z*(147.07089752726017)) + y*(-67.41756835751434))))))
	g08 := x2 * (729.116529735046 + z*(-687.913805923122 + z*(374.063013348744 + z*(-126.627857544292 +
		z*(35.23294016577245)))) + y*(-1721.528607567954 + z*(1349.638121077468 + z*(-1069.887337245828 +
		z*(353.6322866464 + z*(-79.2001547211682)))) + y*(2082.734442399804 + z*(-1229.337851789418 +
		z*(1022.055280565346 + z*(-133.5392811916956))) + y*(-1190.914967948748 + z*(597.809129110048 +
		z*(-437.8475028019056))))) + x*(-175.292041186547 + z*(166.3847855603638 + z*(-88.449193048287)) +
		y*(766.116132004952 + z*(-216.7669050068448 + z*(153.8390924339484)) + y*(-1380.959795403771 +
		y*(938.26075044542))) + x*(-22.6683558512829)))
	return (g03 + g08) * 2.5e-10
}

// gibbsSASA is d2g/dSA2, J/(kg (g/kg)^2). NaN at zero salinity, where
// the 1/x and 1/x2 factors of the fitted form blow up.
func gibbsSASA(x2, x, y, z float64) float64 {
	if x == 0 {
		return math.NaN()
	}
	g08 := 16206.40924829576 + z*(-438.3353068263096 + z*(-32.65551831298088 + z*(-241.4040895769288))) +
		y*(4350.682664000784 + z*(-181.3468468102632) + y*(-548.4580073635929 + y*(394.9341558850032 +
		y*(-137.1180619358304 + y*(19.97576076556064))))) + x*(-16375.02615644505 + z*(540.426293416629) +
		y*(-2940.42460034664) + x*(8990.42970906816 + y*(882.171895189932) + x*(-1700.6187415889315)))
	g08 += (-7296.43987145382 + z*(598.378809221703 + z*(-156.8822727844005 + z*(204.1334828179377 +
		z*(-10.23755797323846)))) + y*(-1480.222530425046 + z*(-525.876123559641 + z*(249.5771783405457 +
		z*(-88.449193048287))) + y*(-129.1994027934126 + z*(1149.174198007428 + z*(-162.5751787551336 +
		z*(76.9195462169742))) + y*(-30.0682112585625 + z*(-1380.959795403771) + y*(2.626801985426835 +
		z*(703.695562834065)))))) / x
	g08 += (11625.62913253464 + 1702.453469893412*y) / x2
	return 0.25 * sfac * sfac * g08
}

// gibbsTT is d2g/dt2, J/(kg K^2).
func gibbsTT(x2, x, y, z float64) float64 {
	g03 := -24715.571866078 + z*(2910.0729080936 + z*(-1513.116771538718 + z*(546.959324647056 +
		z*(-111.1208127634436 + z*(8.68841343834394))))) + y*(4420.447224909672 + z*(-4035.04669887042 +
		z*(2996.162344914912 + z*(-1437.271983926472 + z*(292.8075111563232 + z*(-9.9784263725343))))) +
		y*(-1778.231237203896 + z*(4775.621344883664 + z*(-3621.784567462512 + z*(1826.356460806092 +
		z*(-316.4980526793624)))) + y*(1160.518251685142 + z*(-3892.3662123519 + z*(2410.4130980405 +
		z*(-1105.446104680304 + z*(129.6381336154442)))) + y*(-569.531539542516 + z*(1905.341809925355 +
		z*(-668.691951421377 + z*(245.1181625454336))) + y*(128.13429152494615 + z*(-404.50541014508605))))))
	g08 := x2 * (1760.062705994408 + z*(-1721.528607567954 + z*(674.819060538734 + z*(-356.629112415276 +
		z*(88.4080716616 + z*(-15.84003094423364))))) + y*(-1351.605895580406 + z*(4165.468884799608 +
		z*(-1229.337851789418 + z*(681.370187043564 + z*(-66.7696405958478)))) + y*(1097.1125373015109 +
		z*(-3572.744903846244 + z*(896.713693665072 + z*(-437.8475028019056))) + y*(-433.206481750622 +
		y*(63.9050912541549)))) + x*(-86.1329351956084 + z*(766.116132004952 + z*(-108.3834525034224 +
		z*(51.2796974779828))) + y*(-60.136422517125 + z*(-2761.919590807542) + y*(10.50720794170734 +
		z*(2814.78225133626))) + x*(-137.1145018408982 + y*(296.2006169137524 + y*(-205.6770929037456 +
		y*(49.9394019139016))))))
	return (g03 + g08) * 0.000625
}

// gibbsPP is d2g/dP2, m3/(kg Pa).
func gibbsPP(x2, x, y, z float64) float64 {
	g03 := -5089.1530840726 + z*(1707.106670677722 + z*(-399.7761051043332 + z*(84.0526217606168 +
		z*(-16.39285534413117)))) + y*(1552.307223226202 + z*(-1179.07530528732 + z*(347.75583155301 +
		z*(-42.6580167036654))) + y*(-1513.116771538718 + z*(1640.877973941168 + z*(-666.7248765806615 +
		z*(86.8841343834394))) + y*(998.720781638304 + z*(-1437.271983926472 + z*(585.6150223126464 +
		z*(-33.261421241781))) + y*(-603.630761243752 + z*(913.178230403046 + z*(-316.4980526793624)) +
		y*(241.04130980405 + z*(-331.6338314040912 + z*(77.78288016926652)) + y*(-44.5794634280918 +
		z*(49.02363250908672)))))))
	g08 := x2 * (769.588305957198 + z*(-579.1945920644748 + z*(190.0898073201888 + z*(-52.4960313181984))) +
		y*(-687.913805923122 + z*(748.126026697488 + z*(-379.883572632876 + z*(140.9317606630898))) +
		y*(674.819060538734 + z*(-1069.887337245828 + z*(530.4484299696 + z*(-158.4003094423364))) +
		y*(-409.779283929806 + z*(681.370187043564 + z*(-133.5392811916956)) + y*(149.452282277512 +
		z*(-218.9237514009528))))) + x*(-104.588181856267 + z*(408.2669656358754 + z*(-40.95023189295384)) +
		y*(166.3847855603638 + z*(-176.898386096574) + y*(-108.3834525034224 + z*(153.8390924339484))) +
		x*(-8.16387957824522 + z*(-181.0530671826966))))
	return (g03 + g08) * 1e-16
}
