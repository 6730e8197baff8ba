package entities

// namedEntities maps an HTML character-reference name, with or without
// its trailing semicolon, to its decoded code point. Legacy names without
// a semicolon (e.g. "amp", "lt", "not") are permitted by the HTML
// tokenizer standard for backward compatibility with HTML4; this table
// carries both spellings the way the WHATWG named-character-reference
// table does, trimmed to the common subset actually seen in template
// source rather than the full ~2200-entry table.
var namedEntities = map[string]uint32{
	"amp;": 38, "amp": 38,
	"lt;": 60, "lt": 60,
	"gt;": 62, "gt": 62,
	"quot;": 34, "quot": 34,
	"apos;": 39,
	"nbsp;": 160, "nbsp": 160,
	"not;": 172, "not": 172,
	"copy;": 169, "copy": 169,
	"reg;": 174, "reg": 174,
	"trade;": 8482,
	"hellip;": 8230,
	"mdash;": 8212, "mdash": 8212,
	"ndash;": 8211, "ndash": 8211,
	"lsquo;": 8216,
	"rsquo;": 8217,
	"ldquo;": 8220,
	"rdquo;": 8221,
	"bull;": 8226,
	"dagger;": 8224,
	"Dagger;": 8225,
	"permil;": 8240,
	"euro;": 8364,
	"pound;": 163, "pound": 163,
	"yen;": 165, "yen": 165,
	"cent;": 162, "cent": 162,
	"curren;": 164, "curren": 164,
	"sect;": 167, "sect": 167,
	"para;": 182, "para": 182,
	"middot;": 183, "middot": 183,
	"laquo;": 171, "laquo": 171,
	"raquo;": 187, "raquo": 187,
	"iexcl;": 161, "iexcl": 161,
	"iquest;": 191, "iquest": 191,
	"deg;": 176, "deg": 176,
	"plusmn;": 177, "plusmn": 177,
	"sup1;": 185, "sup1": 185,
	"sup2;": 178, "sup2": 178,
	"sup3;": 179, "sup3": 179,
	"frac12;": 189, "frac12": 189,
	"frac14;": 188, "frac14": 188,
	"frac34;": 190, "frac34": 190,
	"times;": 215, "times": 215,
	"divide;": 247, "divide": 247,
	"micro;": 181, "micro": 181,
	"AMP;": 38, "AMP": 38,
	"LT;": 60, "LT": 60,
	"GT;": 62, "GT": 62,
	"QUOT;": 34, "QUOT": 34,
	"REG;": 174, "REG": 174,
	"COPY;": 169, "COPY": 169,
	"shy;": 173, "shy": 173,
	"ensp;": 8194,
	"emsp;": 8195,
	"thinsp;": 8201,
	"zwnj;": 8204,
	"zwj;": 8205,
	"lrm;": 8206,
	"rlm;": 8207,
	"larr;": 8592,
	"uarr;": 8593,
	"rarr;": 8594,
	"darr;": 8595,
	"harr;": 8596,
	"forall;": 8704,
	"part;": 8706,
	"exist;": 8707,
	"empty;": 8709,
	"nabla;": 8711,
	"isin;": 8712,
	"notin;": 8713,
	"ni;": 8715,
	"prod;": 8719,
	"sum;": 8721,
	"minus;": 8722,
	"lowast;": 8727,
	"radic;": 8730,
	"prop;": 8733,
	"infin;": 8734,
	"ang;": 8736,
	"and;": 8743,
	"or;": 8744,
	"cap;": 8745,
	"cup;": 8746,
	"int;": 8747,
	"there4;": 8756,
	"sim;": 8764,
	"cong;": 8773,
	"asymp;": 8776,
	"ne;": 8800,
	"equiv;": 8801,
	"le;": 8804,
	"ge;": 8805,
	"sub;": 8834,
	"sup;": 8835,
	"nsub;": 8836,
	"sube;": 8838,
	"supe;": 8839,
	"oplus;": 8853,
	"otimes;": 8855,
	"perp;": 8869,
	"sdot;": 8901,
	"alpha;": 945,
	"beta;": 946,
	"gamma;": 947,
	"delta;": 948,
	"epsilon;": 949,
	"zeta;": 950,
	"eta;": 951,
	"theta;": 952,
	"iota;": 953,
	"kappa;": 954,
	"lambda;": 955,
	"mu;": 956,
	"nu;": 957,
	"xi;": 958,
	"omicron;": 959,
	"pi;": 960,
	"rho;": 961,
	"sigma;": 963,
	"tau;": 964,
	"upsilon;": 965,
	"phi;": 966,
	"chi;": 967,
	"psi;": 968,
	"omega;": 969,
	"Alpha;": 913,
	"Beta;": 914,
	"Gamma;": 915,
	"Delta;": 916,
	"Epsilon;": 917,
	"Zeta;": 918,
	"Eta;": 919,
	"Theta;": 920,
	"Iota;": 921,
	"Kappa;": 922,
	"Lambda;": 923,
	"Mu;": 924,
	"Nu;": 925,
	"Xi;": 926,
	"Omicron;": 927,
	"Pi;": 928,
	"Rho;": 929,
	"Sigma;": 931,
	"Tau;": 932,
	"Upsilon;": 933,
	"Phi;": 934,
	"Chi;": 935,
	"Psi;": 936,
	"Omega;": 937,
}
