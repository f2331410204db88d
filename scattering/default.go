package scattering

// Electron scattering parameters for H through Cf. Four-term fits are from
// Doyle & Turner, Acta Cryst. A24, 390 (1968); elements with a zero fourth
// term use the three-term fits tabulated alongside them in International
// Tables for Crystallography, Vol. C, Table 4.3.2.2. Heavier elements can be
// supplied with ReadTable.
var doyleTurner = map[string]Params{
	"H":  {{0.202, 30.868}, {0.244, 8.544}, {0.082, 1.273}, {0, 0}},
	"He": {{0.091, 18.183}, {0.181, 6.212}, {0.110, 1.803}, {0.036, 0.284}},
	"Li": {{1.611, 107.638}, {1.246, 30.480}, {0.326, 4.533}, {0.099, 0.495}},
	"Be": {{1.250, 60.804}, {1.334, 18.591}, {0.360, 3.653}, {0.106, 0.416}},
	"B":  {{0.945, 46.444}, {1.312, 14.178}, {0.419, 3.223}, {0.116, 0.377}},
	"C":  {{0.7307, 36.9951}, {1.1951, 11.2966}, {0.4563, 2.8140}, {0.1247, 0.3456}},
	"N":  {{0.5717, 28.8465}, {1.0425, 9.0542}, {0.4647, 2.4213}, {0.1311, 0.3167}},
	"O":  {{0.4548, 23.7803}, {0.9173, 7.6220}, {0.4719, 2.1440}, {0.1384, 0.2959}},
	"F":  {{0.387, 20.239}, {0.811, 6.609}, {0.475, 1.931}, {0.146, 0.279}},
	"Ne": {{0.303, 17.640}, {0.720, 5.860}, {0.475, 1.762}, {0.153, 0.266}},
	"Na": {{2.2406, 108.0039}, {1.3326, 24.5047}, {0.9070, 3.3914}, {0.2863, 0.4346}},
	"Mg": {{2.2692, 73.6704}, {1.8025, 20.1749}, {0.8394, 3.0181}, {0.2892, 0.4046}},
	"Al": {{2.2756, 72.3220}, {2.4280, 19.7729}, {0.8578, 3.0799}, {0.3266, 0.4076}},
	"Si": {{2.1293, 57.7748}, {2.5333, 16.4756}, {0.8349, 2.8796}, {0.3216, 0.3860}},
	"P":  {{1.888, 44.876}, {2.469, 13.538}, {0.805, 2.642}, {0.320, 0.361}},
	"S":  {{1.659, 36.650}, {2.386, 11.488}, {0.790, 2.469}, {0.321, 0.340}},
	"Cl": {{1.452, 30.935}, {2.292, 9.980}, {0.787, 2.234}, {0.322, 0.323}},
	"Ar": {{1.274, 26.682}, {2.190, 8.813}, {0.793, 2.219}, {0.326, 0.307}},
	"K":  {{3.951, 137.075}, {2.545, 22.402}, {1.980, 4.532}, {0.482, 0.434}},
	"Ca": {{4.470, 99.523}, {2.971, 22.696}, {1.970, 4.195}, {0.482, 0.417}},
	"Sc": {{3.966, 88.960}, {2.917, 20.606}, {1.925, 3.856}, {0.480, 0.399}},
	"Ti": {{3.5653, 81.9821}, {2.8181, 19.0486}, {1.8930, 3.5904}, {0.4825, 0.3855}},
	"V":  {{3.245, 76.379}, {2.698, 17.726}, {1.860, 3.363}, {0.486, 0.374}},
	"Cr": {{2.307, 78.405}, {2.334, 15.785}, {1.823, 3.157}, {0.490, 0.364}},
	"Mn": {{2.747, 67.786}, {2.456, 15.674}, {1.792, 3.000}, {0.498, 0.357}},
	"Fe": {{2.5440, 64.4244}, {2.3434, 14.8806}, {1.7588, 2.8539}, {0.5062, 0.3502}},
	"Co": {{2.367, 61.431}, {2.236, 14.180}, {1.724, 2.725}, {0.515, 0.344}},
	"Ni": {{2.2104, 58.7097}, {2.1347, 13.5530}, {1.6889, 2.6085}, {0.5240, 0.3390}},
	"Cu": {{1.5789, 50.0869}, {1.8197, 12.1428}, {1.6575, 2.8478}, {0.5323, 0.3711}},
	"Zn": {{1.942, 54.162}, {1.950, 12.518}, {1.619, 2.416}, {0.543, 0.330}},
	"Ga": {{2.3205, 65.6019}, {2.4955, 15.4581}, {1.6870, 2.5806}, {0.5988, 0.3510}},
	"Ge": {{2.447, 55.893}, {2.702, 14.393}, {1.616, 2.446}, {0.601, 0.342}},
	"As": {{2.3989, 45.7179}, {2.7898, 12.8173}, {1.5289, 2.2799}, {0.4973, 0.3251}},
	"Se": {{2.298, 38.830}, {2.854, 11.536}, {1.456, 2.146}, {0.590, 0.316}},
	"Br": {{2.166, 33.899}, {2.904, 10.497}, {1.395, 2.041}, {0.589, 0.307}},
	"Kr": {{2.034, 29.999}, {2.927, 9.598}, {1.342, 1.952}, {0.589, 0.299}},
	"Rb": {{4.776, 140.782}, {3.859, 18.991}, {2.234, 3.701}, {0.868, 0.419}},
	"Sr": {{5.848, 104.972}, {4.003, 19.367}, {2.342, 3.737}, {0.880, 0.414}},
	"Y":  {{4.129, 27.548}, {3.012, 5.088}, {1.179, 0.591}, {0, 0}},
	"Zr": {{4.105, 28.492}, {3.144, 5.277}, {1.229, 0.601}, {0, 0}},
	"Nb": {{4.237, 27.415}, {3.105, 5.074}, {1.234, 0.593}, {0, 0}},
	"Mo": {{3.120, 72.464}, {3.906, 14.642}, {2.361, 3.237}, {0.850, 0.366}},
	"Tc": {{4.318, 28.246}, {3.270, 5.148}, {1.287, 0.590}, {0, 0}},
	"Ru": {{4.358, 27.881}, {3.298, 5.179}, {1.323, 0.594}, {0, 0}},
	"Rh": {{4.431, 27.911}, {3.343, 5.153}, {1.345, 0.592}, {0, 0}},
	"Pd": {{4.436, 28.670}, {3.454, 5.269}, {1.383, 0.595}, {0, 0}},
	"Ag": {{2.036, 61.497}, {3.272, 11.824}, {2.511, 2.846}, {0.837, 0.327}},
	"Cd": {{2.574, 55.675}, {3.259, 11.838}, {2.547, 2.784}, {0.838, 0.322}},
	"In": {{3.153, 66.649}, {3.557, 14.449}, {2.818, 2.976}, {0.884, 0.335}},
	"Sn": {{3.450, 59.104}, {3.735, 14.179}, {2.118, 2.855}, {0.877, 0.327}},
	"Sb": {{3.564, 50.487}, {3.844, 13.316}, {2.687, 2.691}, {0.864, 0.316}},
	"Te": {{4.785, 27.999}, {3.688, 5.083}, {1.500, 0.581}, {0, 0}},
	"I":  {{3.473, 39.441}, {4.060, 11.816}, {2.522, 2.415}, {0.840, 0.298}},
	"Xe": {{3.366, 35.509}, {4.147, 11.117}, {2.443, 2.294}, {0.829, 0.289}},
	"Cs": {{6.062, 155.837}, {5.986, 19.695}, {3.303, 3.335}, {1.096, 0.379}},
	"Ba": {{7.821, 117.657}, {6.004, 18.778}, {3.280, 3.263}, {1.103, 0.376}},
	"La": {{4.940, 28.716}, {3.968, 5.245}, {1.663, 0.594}, {0, 0}},
	"Ce": {{5.007, 28.283}, {3.980, 5.183}, {1.678, 0.589}, {0, 0}},
	"Pr": {{5.085, 28.588}, {4.043, 5.143}, {1.684, 0.581}, {0, 0}},
	"Nd": {{5.151, 28.304}, {4.075, 5.073}, {1.683, 0.571}, {0, 0}},
	"Pm": {{5.201, 28.079}, {4.094, 5.081}, {1.719, 0.576}, {0, 0}},
	"Sm": {{5.255, 28.016}, {4.113, 5.037}, {1.743, 0.577}, {0, 0}},
	"Eu": {{6.267, 100.298}, {4.844, 16.066}, {3.202, 2.980}, {1.200, 0.367}},
	"Gd": {{5.225, 29.158}, {4.314, 5.259}, {1.827, 0.586}, {0, 0}},
	"Tb": {{5.272, 29.046}, {4.347, 5.226}, {1.844, 0.585}, {0, 0}},
	"Dy": {{5.332, 28.888}, {4.370, 5.198}, {1.863, 0.581}, {0, 0}},
	"Ho": {{5.376, 28.773}, {4.403, 5.174}, {1.884, 0.582}, {0, 0}},
	"Er": {{5.436, 28.655}, {4.437, 5.117}, {1.891, 0.577}, {0, 0}},
	"Tm": {{5.441, 29.149}, {4.510, 5.264}, {1.956, 0.590}, {0, 0}},
	"Yb": {{5.529, 28.927}, {4.533, 5.144}, {1.945, 0.578}, {0, 0}},
	"Lu": {{5.553, 28.907}, {4.580, 5.160}, {1.969, 0.577}, {0, 0}},
	"Hf": {{5.588, 29.001}, {4.619, 5.164}, {1.997, 0.579}, {0, 0}},
	"Ta": {{5.659, 28.807}, {4.630, 5.114}, {2.014, 0.578}, {0, 0}},
	"W":  {{5.709, 28.782}, {4.677, 5.084}, {2.019, 0.572}, {0, 0}},
	"Re": {{5.695, 28.968}, {4.740, 5.156}, {2.064, 0.575}, {0, 0}},
	"Os": {{5.750, 28.933}, {4.773, 5.139}, {2.079, 0.573}, {0, 0}},
	"Ir": {{5.754, 29.159}, {4.851, 5.152}, {2.096, 0.570}, {0, 0}},
	"Pt": {{5.803, 29.016}, {4.870, 5.150}, {2.127, 0.572}, {0, 0}},
	"Au": {{2.3880, 42.8656}, {4.2259, 9.7430}, {2.6886, 2.2641}, {1.2551, 0.3067}},
	"Hg": {{2.682, 42.822}, {4.241, 9.856}, {2.755, 2.295}, {1.270, 0.307}},
	"Tl": {{5.932, 29.086}, {4.972, 5.126}, {2.195, 0.572}, {0, 0}},
	"Pb": {{3.510, 52.914}, {4.552, 11.884}, {3.154, 2.571}, {1.359, 0.321}},
	"Bi": {{3.841, 50.261}, {4.679, 11.999}, {3.192, 2.560}, {1.363, 0.318}},
	"Po": {{6.070, 28.075}, {4.997, 4.999}, {2.232, 0.563}, {0, 0}},
	"At": {{6.133, 28.047}, {5.031, 4.957}, {2.239, 0.558}, {0, 0}},
	"Rn": {{4.078, 38.406}, {4.978, 11.020}, {3.096, 2.355}, {1.326, 0.299}},
	"Fr": {{6.201, 28.200}, {5.121, 4.954}, {2.275, 0.556}, {0, 0}},
	"Ra": {{6.215, 28.382}, {5.170, 5.002}, {2.316, 0.562}, {0, 0}},
	"Ac": {{6.278, 28.323}, {5.195, 4.949}, {2.321, 0.557}, {0, 0}},
	"Th": {{6.264, 28.651}, {5.263, 5.030}, {2.367, 0.563}, {0, 0}},
	"Pa": {{6.306, 28.688}, {5.303, 5.026}, {2.386, 0.561}, {0, 0}},
	"U":  {{6.767, 85.951}, {6.729, 15.642}, {4.014, 2.936}, {1.561, 0.335}},
	"Np": {{6.323, 29.142}, {5.414, 5.096}, {2.453, 0.568}, {0, 0}},
	"Pu": {{6.415, 28.836}, {5.419, 5.022}, {2.449, 0.561}, {0, 0}},
	"Am": {{6.378, 29.156}, {5.495, 5.102}, {2.495, 0.565}, {0, 0}},
	"Cm": {{6.460, 28.396}, {5.469, 4.970}, {2.471, 0.554}, {0, 0}},
	"Bk": {{6.502, 28.375}, {5.478, 4.975}, {2.510, 0.561}, {0, 0}},
	"Cf": {{6.548, 28.461}, {5.526, 4.965}, {2.520, 0.557}, {0, 0}},
}

var defaultTable = NewTable(doyleTurner)

// Default returns the built-in, process-wide scattering table. The returned
// table is shared by every caller.
func Default() *Table { return defaultTable }
