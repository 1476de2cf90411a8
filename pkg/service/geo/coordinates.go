package geo

// countryCoordinates maps lowercase country names and aliases to approximate
// center coordinates. Pure data; aliases of the same country share one value.
var countryCoordinates = map[string]Coordinates{
	"united states":                    {Lng: -95.7129, Lat: 37.0902},
	"usa":                              {Lng: -95.7129, Lat: 37.0902},
	"united states of america":         {Lng: -95.7129, Lat: 37.0902},
	"us":                               {Lng: -95.7129, Lat: 37.0902},
	"japan":                            {Lng: 138.2529, Lat: 36.2048},
	"germany":                          {Lng: 10.4515, Lat: 51.1657},
	"united kingdom":                   {Lng: -3.4360, Lat: 55.3781},
	"uk":                               {Lng: -3.4360, Lat: 55.3781},
	"france":                           {Lng: 2.2137, Lat: 46.2276},
	"canada":                           {Lng: -106.3468, Lat: 56.1304},
	"china":                            {Lng: 104.1954, Lat: 35.8617},
	"india":                            {Lng: 78.9629, Lat: 20.5937},
	"brazil":                           {Lng: -51.9253, Lat: -14.2350},
	"australia":                        {Lng: 133.7751, Lat: -25.2744},
	"russia":                           {Lng: 105.3188, Lat: 61.5240},
	"italy":                            {Lng: 12.5674, Lat: 41.8719},
	"spain":                            {Lng: -3.7492, Lat: 40.4637},
	"south korea":                      {Lng: 127.7669, Lat: 35.9078},
	"mexico":                           {Lng: -102.5528, Lat: 23.6345},
	"netherlands":                      {Lng: 5.2913, Lat: 52.1326},
	"sweden":                           {Lng: 18.6435, Lat: 60.1282},
	"norway":                           {Lng: 8.4689, Lat: 60.4720},
	"switzerland":                      {Lng: 8.2275, Lat: 46.8182},
	"belgium":                          {Lng: 4.4699, Lat: 50.5039},
	"austria":                          {Lng: 14.5501, Lat: 47.5162},
	"denmark":                          {Lng: 9.5018, Lat: 56.2639},
	"finland":                          {Lng: 25.7482, Lat: 61.9241},
	"poland":                           {Lng: 19.1343, Lat: 51.9194},
	"portugal":                         {Lng: -8.2245, Lat: 39.3999},
	"greece":                           {Lng: 21.8243, Lat: 39.0742},
	"turkey":                           {Lng: 35.2433, Lat: 38.9637},
	"south africa":                     {Lng: 22.9375, Lat: -30.5595},
	"egypt":                            {Lng: 30.8025, Lat: 26.8206},
	"israel":                           {Lng: 34.8516, Lat: 32.7940},
	"argentina":                        {Lng: -63.6167, Lat: -38.4161},
	"chile":                            {Lng: -71.5430, Lat: -35.6751},
	"colombia":                         {Lng: -74.2973, Lat: 4.5709},
	"peru":                             {Lng: -75.0152, Lat: -9.1900},
	"venezuela":                        {Lng: -66.5897, Lat: 6.4238},
	"thailand":                         {Lng: 100.9925, Lat: 15.8700},
	"vietnam":                          {Lng: 108.2772, Lat: 14.0583},
	"indonesia":                        {Lng: 113.9213, Lat: -0.7893},
	"malaysia":                         {Lng: 101.9758, Lat: 4.2105},
	"singapore":                        {Lng: 103.8198, Lat: 1.3521},
	"philippines":                      {Lng: 121.7740, Lat: 12.8797},
	"new zealand":                      {Lng: 174.8860, Lat: -40.9006},
	"ireland":                          {Lng: -8.2439, Lat: 53.4129},
	"czech republic":                   {Lng: 15.4730, Lat: 49.8175},
	"hungary":                          {Lng: 19.5033, Lat: 47.1625},
	"romania":                          {Lng: 24.9668, Lat: 45.9432},
	"bulgaria":                         {Lng: 25.4858, Lat: 42.7339},
	"croatia":                          {Lng: 15.2, Lat: 45.1},
	"serbia":                           {Lng: 21.0059, Lat: 44.0165},
	"ukraine":                          {Lng: 31.1656, Lat: 48.3794},
	"belarus":                          {Lng: 27.9534, Lat: 53.7098},
	"lithuania":                        {Lng: 23.8813, Lat: 55.1694},
	"latvia":                           {Lng: 24.6032, Lat: 56.8796},
	"estonia":                          {Lng: 25.0136, Lat: 58.5953},
	"slovenia":                         {Lng: 14.9955, Lat: 46.1512},
	"slovakia":                         {Lng: 19.6990, Lat: 48.6690},
	"luxembourg":                       {Lng: 6.1296, Lat: 49.8153},
	"malta":                            {Lng: 14.3754, Lat: 35.9375},
	"cyprus":                           {Lng: 33.4299, Lat: 35.1264},
	"iceland":                          {Lng: -19.0208, Lat: 64.9631},
	"morocco":                          {Lng: -7.0926, Lat: 31.7917},
	"algeria":                          {Lng: 1.6596, Lat: 28.0339},
	"tunisia":                          {Lng: 9.5375, Lat: 33.8869},
	"libya":                            {Lng: 17.2283, Lat: 26.3351},
	"sudan":                            {Lng: 30.2176, Lat: 12.8628},
	"ethiopia":                         {Lng: 40.4897, Lat: 9.1450},
	"kenya":                            {Lng: 37.9062, Lat: -0.0236},
	"tanzania":                         {Lng: 34.8888, Lat: -6.3690},
	"uganda":                           {Lng: 32.2903, Lat: 1.3733},
	"ghana":                            {Lng: -1.0232, Lat: 7.9465},
	"nigeria":                          {Lng: 8.6753, Lat: 9.0820},
	"senegal":                          {Lng: -14.4524, Lat: 14.4974},
	"mali":                             {Lng: -3.9962, Lat: 17.5707},
	"burkina faso":                     {Lng: -2.1832, Lat: 12.2383},
	"niger":                            {Lng: 8.0817, Lat: 17.6078},
	"chad":                             {Lng: 18.7322, Lat: 15.4542},
	"cameroon":                         {Lng: 12.3547, Lat: 7.3697},
	"central african republic":         {Lng: 20.9394, Lat: 6.6111},
	"democratic republic of congo":     {Lng: 21.7587, Lat: -4.0383},
	"republic of congo":                {Lng: 15.8277, Lat: -0.2280},
	"gabon":                            {Lng: 11.6094, Lat: -0.8037},
	"equatorial guinea":                {Lng: 10.2679, Lat: 1.6508},
	"sao tome and principe":            {Lng: 6.6131, Lat: 0.1864},
	"cape verde":                       {Lng: -24.0132, Lat: 16.5388},
	"guinea-bissau":                    {Lng: -15.1804, Lat: 11.8037},
	"guinea":                           {Lng: -9.6966, Lat: 9.9456},
	"sierra leone":                     {Lng: -11.7799, Lat: 8.4606},
	"liberia":                          {Lng: -9.4295, Lat: 6.4281},
	"ivory coast":                      {Lng: -5.5471, Lat: 7.5400},
	"togo":                             {Lng: 0.8248, Lat: 8.6195},
	"benin":                            {Lng: 2.3158, Lat: 9.3077},
	"mauritania":                       {Lng: -10.9408, Lat: 21.0079},
	"gambia":                           {Lng: -15.3101, Lat: 13.4432},
	"madagascar":                       {Lng: 46.8691, Lat: -18.7669},
	"mauritius":                        {Lng: 57.5522, Lat: -20.3484},
	"seychelles":                       {Lng: 55.4920, Lat: -4.6796},
	"comoros":                          {Lng: 43.8711, Lat: -11.8750},
	"djibouti":                         {Lng: 42.5903, Lat: 11.8251},
	"eritrea":                          {Lng: 39.7823, Lat: 15.7394},
	"somalia":                          {Lng: 46.1996, Lat: 5.1521},
	"rwanda":                           {Lng: 29.8739, Lat: -1.9403},
	"burundi":                          {Lng: 29.9189, Lat: -3.3731},
	"malawi":                           {Lng: 34.3015, Lat: -13.2543},
	"zambia":                           {Lng: 27.8546, Lat: -13.1339},
	"zimbabwe":                         {Lng: 29.1549, Lat: -19.0154},
	"botswana":                         {Lng: 24.6849, Lat: -22.3285},
	"namibia":                          {Lng: 18.4241, Lat: -22.9576},
	"lesotho":                          {Lng: 28.2336, Lat: -29.6100},
	"eswatini":                         {Lng: 31.4659, Lat: -26.5225},
	"mozambique":                       {Lng: 35.5296, Lat: -18.6657},
	"angola":                           {Lng: 17.8739, Lat: -11.2027},
	"iran":                             {Lng: 53.6880, Lat: 32.4279},
	"iraq":                             {Lng: 43.6793, Lat: 33.2232},
	"syria":                            {Lng: 38.9968, Lat: 34.8021},
	"lebanon":                          {Lng: 35.8623, Lat: 33.8547},
	"jordan":                           {Lng: 36.2384, Lat: 31.9539},
	"saudi arabia":                     {Lng: 45.0792, Lat: 23.8859},
	"yemen":                            {Lng: 48.5164, Lat: 15.5527},
	"oman":                             {Lng: 55.9754, Lat: 21.5129},
	"united arab emirates":             {Lng: 53.8478, Lat: 23.4241},
	"uae":                              {Lng: 53.8478, Lat: 23.4241},
	"qatar":                            {Lng: 51.1839, Lat: 25.3548},
	"bahrain":                          {Lng: 50.6344, Lat: 26.0667},
	"kuwait":                           {Lng: 47.4818, Lat: 29.3117},
	"afghanistan":                      {Lng: 67.7090, Lat: 33.9391},
	"pakistan":                         {Lng: 69.3451, Lat: 30.3753},
	"bangladesh":                       {Lng: 90.3563, Lat: 23.6850},
	"sri lanka":                        {Lng: 80.7718, Lat: 7.8731},
	"maldives":                         {Lng: 73.2207, Lat: 3.2028},
	"bhutan":                           {Lng: 90.4336, Lat: 27.5142},
	"nepal":                            {Lng: 84.1240, Lat: 28.3949},
	"myanmar":                          {Lng: 95.9560, Lat: 21.9162},
	"laos":                             {Lng: 102.4955, Lat: 19.8563},
	"cambodia":                         {Lng: 104.9910, Lat: 12.5657},
	"mongolia":                         {Lng: 103.8467, Lat: 46.8625},
	"north korea":                      {Lng: 127.5101, Lat: 40.3399},
	"taiwan":                           {Lng: 120.9605, Lat: 23.6978},
	"hong kong":                        {Lng: 114.1694, Lat: 22.3193},
	"macau":                            {Lng: 113.5439, Lat: 22.1987},
	"brunei":                           {Lng: 114.7277, Lat: 4.5353},
	"east timor":                       {Lng: 125.7275, Lat: -8.8742},
	"papua new guinea":                 {Lng: 143.9555, Lat: -6.3150},
	"fiji":                             {Lng: 179.4144, Lat: -16.5790},
	"solomon islands":                  {Lng: 160.1562, Lat: -9.6457},
	"vanuatu":                          {Lng: 166.9592, Lat: -15.3767},
	"new caledonia":                    {Lng: 165.6189, Lat: -20.9043},
	"french polynesia":                 {Lng: -149.4068, Lat: -17.6797},
	"samoa":                            {Lng: -172.1046, Lat: -13.7590},
	"tonga":                            {Lng: -175.1982, Lat: -21.1789},
	"kiribati":                         {Lng: -157.3630, Lat: 1.8709},
	"tuvalu":                           {Lng: 179.1940, Lat: -7.1095},
	"nauru":                            {Lng: 166.9315, Lat: -0.5228},
	"palau":                            {Lng: 134.5825, Lat: 7.5150},
	"marshall islands":                 {Lng: 171.1845, Lat: 7.1315},
	"micronesia":                       {Lng: 150.5508, Lat: 7.4256},
	"cook islands":                     {Lng: -159.7777, Lat: -21.2367},
	"niue":                             {Lng: -169.8672, Lat: -19.0544},
	"tokelau":                          {Lng: -171.8484, Lat: -8.9672},
	"american samoa":                   {Lng: -170.1320, Lat: -14.3064},
	"guam":                             {Lng: 144.7937, Lat: 13.4443},
	"northern mariana islands":         {Lng: 145.3887, Lat: 17.3308},
	"puerto rico":                      {Lng: -66.5901, Lat: 18.2208},
	"us virgin islands":                {Lng: -64.8963, Lat: 18.3358},
	"british virgin islands":           {Lng: -64.6963, Lat: 18.4207},
	"anguilla":                         {Lng: -63.1691, Lat: 18.2206},
	"antigua and barbuda":              {Lng: -61.7965, Lat: 17.0608},
	"dominica":                         {Lng: -61.3710, Lat: 15.4149},
	"saint lucia":                      {Lng: -60.9789, Lat: 13.9094},
	"saint vincent and the grenadines": {Lng: -61.2872, Lat: 12.9843},
	"barbados":                         {Lng: -59.5432, Lat: 13.1939},
	"grenada":                          {Lng: -61.6790, Lat: 12.2628},
	"trinidad and tobago":              {Lng: -61.2225, Lat: 10.6918},
	"saint kitts and nevis":            {Lng: -62.7830, Lat: 17.3578},
	"montserrat":                       {Lng: -62.2130, Lat: 16.7425},
	"turks and caicos islands":         {Lng: -71.7979, Lat: 21.6940},
	"cayman islands":                   {Lng: -80.5665, Lat: 19.2866},
	"jamaica":                          {Lng: -77.2975, Lat: 18.1096},
	"haiti":                            {Lng: -72.2852, Lat: 18.9712},
	"dominican republic":               {Lng: -70.1627, Lat: 18.7357},
	"cuba":                             {Lng: -77.7812, Lat: 21.5218},
	"bahamas":                          {Lng: -77.3963, Lat: 25.0343},
	"bermuda":                          {Lng: -64.7505, Lat: 32.3078},
	"greenland":                        {Lng: -42.6043, Lat: 71.7069},
	"faroe islands":                    {Lng: -6.9118, Lat: 61.8926},
	"svalbard and jan mayen":           {Lng: 23.6702, Lat: 77.5536},
	"antarctica":                       {Lng: 0.0000, Lat: -90.0000},
}
