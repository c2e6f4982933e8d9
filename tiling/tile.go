package tiling

// Tile is one of the 256 catalog entries, identified by its index.
type Tile uint8

// TileCount is the size of the tile catalog.
const TileCount = 256

// tileEdges encodes the catalog: tile t occupies bytes [4t, 4t+4) in
// side order right, top, left, bottom, one color character per side.
// The constants correspond to `motifs_order=jblackwood` on
// https://e2.bucas.name.
const tileEdges = "" +
	"jaarfajtbafvfabpjaferajcbarljabufajpnafejanmbajpfabebafifabsaafburarituovvistpvuwetsucwgwluoiuwcdpiliediomiccpotlecegieocsgcabcb" +
	"irafooitdsoddudmgsdgdlgdpoddlcpumllwmimeciwsttcphetutohvwcteabvjtfarutttcduhsmctvgsvwdvvwdwvhuwelwhudelvmsdstpmeputwvvcdpemeajpr" +
	"irajdtiolhdtmtlowvmocvwwcveisecshusstvhihstltehedwtlhddciehgarcrhjajeohlitelloiisolccwssticpcstpcscilicmsllhheshglhvwcgvppwvarpf" +
	"mjabhlmmllhumilumcmigsmgppgpmpphoimvwmopshwewhsqwvwiovwvqvodafqfgbabhmgtquhgcuqmticelgtseplcmheslvmogplthegvtqhoeitvpvemudptafuf" +
	"hbafpthligpiqmigmeqddsmplcdigslgdogeotdhovohcooscvcugmcoitgkafiflfanqllpliquhglvddhwdpdqkidgegkpweeiohwdchocuscguuuoeougwkelafwr" +
	"qnandpqhtudkkvtqewkdsqewpgsguppohiupqdhcucqeqgukuoqspgumslpwarsrcnanqhcvwkqowqwumdwevwmdtgvtvotmkpviscklpeskukpuqsugsmqgswsdarsj" +
	"hnafqvhwgoqkkugvoekwedoshteqkmhlmikwklmlqkktiuqksgiutgsvvdtkajvndfanlwdqgklqlvgqqwlkusqhvquqilvmkwipolkektoudkkcqudkpvquokpmanoj" +
	"gnabhqgqmqhkkqmkwkkgohwqvqoiomvkmpokqemtmuqidcmhqkdekuqwpmkkajpjrbaanqrajknabkjangbabqnanibabknajkbantjarinanhranenarwnarkraajra"

// tileColors is the parsed form of tileEdges, filled once at startup.
var tileColors [4 * TileCount]Color

func init() {
	for i := 0; i < len(tileEdges); i++ {
		c, ok := ColorFromChar(tileEdges[i])
		if !ok {
			panic(panicTileCatalog)
		}
		tileColors[i] = c
	}
}

const panicTileCatalog = "tiling: tile catalog contains a byte outside 'a'..'w'"

// Color returns the catalog color of side s of the tile.
// Complexity: O(1).
func (t Tile) Color(s Side) Color {
	return tileColors[4*int(t)+int(s)]
}
