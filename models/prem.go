/*
Copyright © 2019 the Radial authors.
This file is part of Radial.

Radial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Radial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Radial.  If not, see <http://www.gnu.org/licenses/>.
*/

package models

import "github.com/earthmodel/radial"

// Polynomial coefficients of the Preliminary Reference Earth Model,
// from Dziewonski & Anderson (1981), table 1, in x = r/6371 km.
// Thirteen regions from the center up: inner core, outer core, D″,
// lower mantle, lowermost transition zone, three transition zone
// regions, the anisotropic low velocity zone and lid, lower and upper
// crust, and ocean. The isotropic vp and vs in the two anisotropic
// regions are PREM's published Voigt-average fits.
var (
	premTops = []float64{1221.5, 3480, 3630, 5600, 5701, 5771, 5971,
		6151, 6291, 6346.6, 6356, 6368, 6371}

	premRho = [][]float64{
		{13.0885, 0, -8.8381},
		{12.5815, -1.2638, -3.6426, -5.5281},
		{7.9565, -6.4761, 5.5283, -3.0807},
		{7.9565, -6.4761, 5.5283, -3.0807},
		{7.9565, -6.4761, 5.5283, -3.0807},
		{5.3197, -1.4836},
		{11.2494, -8.0298},
		{7.1089, -3.8045},
		{2.6910, 0.6924},
		{2.6910, 0.6924},
		{2.900},
		{2.600},
		{1.020},
	}

	premVp = [][]float64{
		{11.2622, 0, -6.3640},
		{11.0487, -4.0362, 4.8023, -13.5732},
		{15.3891, -5.3181, 5.5242, -2.5514},
		{24.9520, -40.4673, 51.4832, -26.6419},
		{29.2766, -23.6027, 5.5242, -2.5514},
		{19.0957, -9.8672},
		{39.7027, -32.6166},
		{20.3926, -12.2569},
		{4.1875, 3.9382},
		{4.1875, 3.9382},
		{6.800},
		{5.800},
		{1.450},
	}

	premVs = [][]float64{
		{3.6678, 0, -4.4475},
		{0},
		{6.9254, 1.4672, -2.0834, 0.9783},
		{11.1671, -13.7818, 17.4575, -9.2777},
		{22.3459, -17.2473, -2.0834, 0.9783},
		{9.9839, -4.9324},
		{22.3512, -18.5856},
		{8.9496, -4.4597},
		{2.1519, 2.3481},
		{2.1519, 2.3481},
		{3.900},
		{3.200},
		{0},
	}

	premVPV = [][]float64{
		{11.2622, 0, -6.3640},
		{11.0487, -4.0362, 4.8023, -13.5732},
		{15.3891, -5.3181, 5.5242, -2.5514},
		{24.9520, -40.4673, 51.4832, -26.6419},
		{29.2766, -23.6027, 5.5242, -2.5514},
		{19.0957, -9.8672},
		{39.7027, -32.6166},
		{20.3926, -12.2569},
		{0.8317, 7.2180},
		{0.8317, 7.2180},
		{6.800},
		{5.800},
		{1.450},
	}

	premVPH = [][]float64{
		{11.2622, 0, -6.3640},
		{11.0487, -4.0362, 4.8023, -13.5732},
		{15.3891, -5.3181, 5.5242, -2.5514},
		{24.9520, -40.4673, 51.4832, -26.6419},
		{29.2766, -23.6027, 5.5242, -2.5514},
		{19.0957, -9.8672},
		{39.7027, -32.6166},
		{20.3926, -12.2569},
		{3.5908, 4.6172},
		{3.5908, 4.6172},
		{6.800},
		{5.800},
		{1.450},
	}

	premVSV = [][]float64{
		{3.6678, 0, -4.4475},
		{0},
		{6.9254, 1.4672, -2.0834, 0.9783},
		{11.1671, -13.7818, 17.4575, -9.2777},
		{22.3459, -17.2473, -2.0834, 0.9783},
		{9.9839, -4.9324},
		{22.3512, -18.5856},
		{8.9496, -4.4597},
		{5.8582, -1.4678},
		{5.8582, -1.4678},
		{3.900},
		{3.200},
		{0},
	}

	premVSH = [][]float64{
		{3.6678, 0, -4.4475},
		{0},
		{6.9254, 1.4672, -2.0834, 0.9783},
		{11.1671, -13.7818, 17.4575, -9.2777},
		{22.3459, -17.2473, -2.0834, 0.9783},
		{9.9839, -4.9324},
		{22.3512, -18.5856},
		{8.9496, -4.4597},
		{-1.0839, 5.7176},
		{-1.0839, 5.7176},
		{3.900},
		{3.200},
		{0},
	}

	premEta = [][]float64{
		{1}, {1}, {1}, {1}, {1}, {1}, {1}, {1},
		{3.3687, -2.4778},
		{3.3687, -2.4778},
		{1}, {1}, {1},
	}

	// A shear quality factor of zero marks the non-dissipative
	// liquid regions (outer core and ocean).
	premQMu = [][]float64{
		{84.6}, {0}, {312}, {312}, {312}, {143}, {143}, {143},
		{80}, {600}, {600}, {600}, {0},
	}

	premQKappa = [][]float64{
		{1327.7}, {57823}, {57823}, {57823}, {57823}, {57823}, {57823},
		{57823}, {57823}, {57823}, {57823}, {57823}, {57823},
	}
)

// PREM returns the Preliminary Reference Earth Model of Dziewonski &
// Anderson (1981): anisotropic between 6151 and 6346.6 km radius,
// attenuating, with velocities specified at 1 Hz.
func PREM() *radial.PolynomialModel {
	m, err := radial.NewPolynomial(premTops, radial.PolyProfile{
		Vp:                 premVp,
		Vs:                 premVs,
		Rho:                premRho,
		VPV:                premVPV,
		VPH:                premVPH,
		VSV:                premVSV,
		VSH:                premVSH,
		Eta:                premEta,
		QMu:                premQMu,
		QKappa:             premQKappa,
		ReferenceFrequency: 1,
	})
	if err != nil {
		panic(err) // static data; cannot fail
	}
	return m
}
