package wordlist

// languageVectors pair entropy with the phrase and empty-passphrase seed
// for each built-in language.
var languageVectors = []struct {
	lang    Language
	entropy string
	phrase  string
	seed    string
}{
	{
		lang:    English,
		entropy: "dc6c0349310df632650c891dc52920cc",
		phrase:  "symbol gas spoil ginger term bomb neither muffin build citizen else odor",
		seed:    "9c91cc40b3ea91e577d301d5a0613d158b5df1c67d650e5a94d64c0fb1596d8bbf68a02c4a2413e01afb4e025db98e8c64a1963eaa2112b53c68e9871cfc4400",
	},
	{
		lang:    English,
		entropy: "8fb9fdae024024a3acfe60c5c67c4750f288ac98",
		phrase:  "moral soup high afraid across fade recycle slot shift crop balcony peanut chuckle film gather",
		seed:    "a428cdd413acaea0a585f63a4235d4692c1914bac7d180767fd22b4bed4935208adb553984301e310cfb4dcf2fabeccd5a3c6572e523354fae6a110534a06b99",
	},
	{
		lang:    English,
		entropy: "8848296254bf80ca49f4c81025ccaa9bbff70397822727db",
		phrase:  "marriage donor flat practice way gown chief october awake common click danger youth limb fun eager chief swap",
		seed:    "5d3f8e69eef4f164485a93a90bb243cb256d7b687f4e6244fc07d977c7c3d897d923570ccc575d6cb362e624a6f468ff77c5ddbe8aac78f19079233b5de48edf",
	},
	{
		lang:    English,
		entropy: "5528f065635bf3f446e6fdb398daa231d736274ac170a97875d720d4",
		phrase:  "festival elegant bone shop sand when breeze text receive short possible glove inflict beauty climb come practice senior into double earth",
		seed:    "e8c8a7c0ddc321a6b3f0c1c0775675e9afd94910829fc2ef5e171a0fa808b3b765bc8d8cbf0193a39cb5fd316787360e5e92aa2bac68a1dd8807287332d507fa",
	},
	{
		lang:    English,
		entropy: "a1f81da593c57c367ccc01195e4d79429b1461c02a00724e37e4617fe918c91b",
		phrase:  "peanut science harvest chest fit brass veteran lens bone venue furnace lunch rally couch absent divorce inch immune weekend seed write midnight caught help",
		seed:    "05f2f5b686741cb52fbc853b59cba362ea8afa23c25f8b0102d6ee611b4a3d2913ec271db7a711131e0b33f08a759f81372277282a788747ca465f2b077538c8",
	},
	{
		lang:    French,
		entropy: "e8ef3e450d3de73ecef3f9560f7225a0",
		phrase:  "taxer hésiter lourd bastion sodium mouche crucial impact entourer horde kayak décrire",
		seed:    "bda2ab861fe77d7e6538127803a19da2087dde5626648dadd786557243ca419133a823bc2f8fab608bfb687a4f8f11f5a0cfac5b153fd4b6e08461cfa59708ce",
	},
	{
		lang:    French,
		entropy: "c15bd671fd90891279308d2fcb4f6eb12ef9eaca",
		phrase:  "primitif soldat minéral vinaigre ailier juteux surface arpenter chignon esquiver sésame faiblir trésor vague caresser",
		seed:    "e4bfb94a2c0123f109ff1801c1812ac120e71389e995b5b423dac7bca8e94e77d5d7572bb30c3f7bed1ba0eb7f0b47df430af2e803cfe22f05e6a177ad3e73f9",
	},
	{
		lang:    French,
		entropy: "d1ab16a54a98631cfe95e8b2fe754413c01dd882c1b33305",
		phrase:  "rondin éprouver obturer mammouth janvier ligature victoire poisson parole unitaire emballer calmer absolu tolérant amateur compact clavier caneton",
		seed:    "3f689fd3892aecc5e264703aaaf0a79364b3f4abbd6fa97b31ba1b7182bfcc9a7c641e421c1e8580f7c78441d5b029502bb091ef9eb22c0d61764178c6865811",
	},
	{
		lang:    French,
		entropy: "da45d0890adfea81130bef16842d789115e10e506e1ea9459ba316d6",
		phrase:  "sénateur chaton boxeur automne voter déesse écarter ignorer aveugle boueux évidence boutique éventail jeunesse délice psychose obturer cercle taureau chaise franchir",
		seed:    "df5d37e61fcaabc066f94cecfc344bb203b718d4a701c0193081b68c156243ec936d375c6bd80fb73e659314ae4c36c7d1ef84f3b0f3871a5de8a8169a1df698",
	},
	{
		lang:    French,
		entropy: "dccb17fff17a318a7fc11e42b44473b17ae3bb225c6d322811b7491ad4bd150c",
		phrase:  "signal éprouver zoologie studieux nautique pyramide voyelle brochure dénuder nappe bidule farfelu orifice siphon kayak libérer citoyen déesse frontal lueur orageux évoquer engager médaille",
		seed:    "728d932f21aba5e67c497ac28e489a2aed84c56333a9d29b8df236a90b8c0bd697b001084ae243c6888173e27b994e8eed9ef97fe5c3da07803209184d992786",
	},
	{
		lang:    Italian,
		entropy: "a940e3f05654803cb22c4494b220a4e4",
		phrase:  "produrre alibi vitello quasi eremita bisturi seggiola nemmeno ospite onnivoro celebre selciato",
		seed:    "71803e8c6c68130ccbfda3d1d9fb04a22e66bdd48765c695aabcbd4400693b0fda6cc6d0ff4d25083cb28d0f7abb93ab901fbfae2c5d557c806eea0b9f97826f",
	},
	{
		lang:    Italian,
		entropy: "e2848b17e9efd434e54819850529e3413e137848",
		phrase:  "tardivo camicia sclerare sociale voragine baule oste adottare mugnaio cellulare mangiare mondina svolta rompere bretella",
		seed:    "cc277a1d64adfa9091f3878833856b34e3dfb152f1aa203549c841d09f71268bf2c5a9155ffea261b00ec87759c585829b6c413da0d25f0cd6bf16b83c8b1233",
	},
	{
		lang:    Italian,
		entropy: "78e9be08f3b769d63a5e9378cdbfca8aab7eb271acca42af",
		phrase:  "manifesto fango monastero titubante macchina trarre tortora smeraldo mangiare labirinto usuraio attrito ripieno funzione scorta parcella edile materasso",
		seed:    "125f1802f7d1ec9b8edb6b58144a25bc518cdc86d1a291d592fdea8b3d42c078be92222decd69ea82790990415344ec7cd7b684f043f8bb54526d978407aac4e",
	},
	{
		lang:    Italian,
		entropy: "805945fd8c4636fb912ab4b99dceb7276fa21f07c094a6a69273e0fa",
		phrase:  "missiva sempre mimosa balena ibernato metallo elsa fracasso ritardo turbare ragione fastoso vile aragosta bordo asepsi potassio critico perbene sbalzo profumo",
		seed:    "54fcb70b713cbe1b7f0a7d6eebe7a2061bf698986728dbad00c824b25f5eecd3f56cd94ec455d6e6403909f694a3b05f3867fa0ecaa145fcd35136510b516b43",
	},
	{
		lang:    Italian,
		entropy: "72b9fa11031f36c770c2f6e6edb58a04d3cd13a60160fa9a5c3fe82f2f6a7d72",
		phrase:  "limpido silenzio movimento albume vagabondo identico sbrinare girato tiraggio iterare gruppo ambito diradare ninfa palesare cifrare vincitore smussato aratura simulato utilizzo riforma vasca globulo",
		seed:    "29083d421634e1c1d84ebeebc1c7a9faaa018b97c7b589a0491fb258d051c6a3de723144c09dfbc22374fba35a423899201c794f0c91dcd16c00a5a8a5b465f7",
	},
	{
		lang:    Spanish,
		entropy: "6d79db09693fa7c42e8e7aae2f3dc029",
		phrase:  "hongo ruleta rayo sanidad vigor tarot pregunta ruptura pedal laguna hurto exponer",
		seed:    "49d9ab8e54a9003d3dfce512a3ef674e04417d645cf1ed147b232ce52975b60b44be3d1c1187569edd90315e53e69d383f526bd8548f636d2314378cc6985050",
	},
	{
		lang:    Spanish,
		entropy: "627a7e030a47b8b74b48113e520e854fdaeb0a97",
		phrase:  "gemelo seco líquido asilo lata fobia cazo acento curioso misil oferta ocho pelar maceta freír",
		seed:    "7d5ef997137de1d550b22e3c0a71e57b8d4c3615f8538cb2988d0dc6b65a1a396d7cb63ddcde5c59e3f8c2f8506c8e743cd2a9ca2b69020f02428e127a9719c8",
	},
	{
		lang:    Spanish,
		entropy: "b0713518312fe7d9e709b02b895b3cdac9610d09184ac139",
		phrase:  "pera mármol don gavilán yerno tráfico noticia colegio carne élite rumor placa muñeca maldad búho aliado rampa reunir",
		seed:    "885cebbe9fde40da4cfba3d322312c12f4cd4bb22cfa137ee1dd2eca78ab4f546596f86b04aea413d472db1f90fabaeb7c29d1b30527a52a4cbdf30411e2fb80",
	},
	{
		lang:    Spanish,
		entropy: "ba85978972fc434452f10728b7a888660d496f027e21ba1f288f0d4e",
		phrase:  "preso catorce tarta tesoro redondo ola empeño bonsái camino pueblo brazo rodilla seis poeta almíbar redondo precoz viaje bucle bache típico",
		seed:    "273a98d3bda309e6aea194f892053c020e3fdd8bea59069eeac9fc6039d236ee2bea333c0707e441b3475f7eb744233f862fa0e4ee22987423f017277ec6ebba",
	},
	{
		lang:    Spanish,
		entropy: "c53f1e3818464d446827a042b79d127ae5655a74897fa2c30f0e3ce7fcff5835",
		phrase:  "regla verso metro chivo goloso ola ocurrir vaca día público dinero variar fauna pausa sanear chancla olmo ave recoger lágrima limón límite galería pétalo",
		seed:    "08e56faf1b883737869f4fdbf35534202b760c80d898c8f8baa2cdd084b0c88e4c5c1bd4e20a478864e5dd83d3e59b1a80184551b17381811886d90c2544190e",
	},
	{
		lang:    Czech,
		entropy: "1fc165be09f86cc218a6cb73c98d5919",
		phrase:  "dolar bokorys mudrc chirurg ohnisko loket lstivost ubrat naopak koberec krutost hlava",
		seed:    "23f66136674841ea4f26139c60796224c736176e19d6ecd204bf6663dde7a15900b36d39e140289b52e02c20a97f620f75f56fcf3c9470b5c0bb9a85dd298a52",
	},
	{
		lang:    Czech,
		entropy: "09e615ad5a262970d9c00b0715e3fb686ff14d71",
		phrase:  "blokovat hanopis mluvit rozchod lstivost sardinka mazlit anekdota beran ratolest ztratit tavenina zubr praktika sobota",
		seed:    "3cfeb3a1c4d5a2eed8893dc3ead3b2c2a7192d848206c61f151603970c7bf2e3bc75fc9a8c7a39ef140b4a00eed502730a866dd8665ea8991fb996a902309015",
	},
	{
		lang:    Czech,
		entropy: "31bdab515bfbd9d0386e84fae89f3e20369a516eddc69ba2",
		phrase:  "hektar vyplatit topol samec sirup voskovka vejce tanker zmar kalnost tajga jednatel mimika euforie seslat sazba podepsat chapadlo",
		seed:    "2a573ead25dd2dc01efa00e78bb1116af41a2f0c1aee90c5ab58db3d9f3f120d7673a98fd72dff5425495227b7bbcf5b8232462719506337cd2b5f41c93790fa",
	},
	{
		lang:    Czech,
		entropy: "c866375dd6683cd6a3d789ed6e90be9e6561f7f4cc8f017864b8538c",
		phrase:  "srpen hektar trvat pysk odliv mluvit ovanout vzpoura vypravit naposled grog ikona kruhadlo znak tkadlec panovat anekdota smrad genetika praporek spojenec",
		seed:    "4614a852a91077b9858971a1dc7b756ac461c72c3cd0d40fa6e1939f4102525ac06f5c725052007df12ec372f39f2366e33cac1e05a8b135b0565b7f17554f7e",
	},
	{
		lang:    Czech,
		entropy: "0ff864e071bad877cc79944f1e8207439d9b298c713d13fd4cca257a58fd1e0b",
		phrase:  "burza smrad hotovost veterina radon hybnost hematom historik koncept zanechat ochrana ohryzek ubrus pendrek helma epocha chirurg vychovat historik klokan povyk obliba neochota nepokoj",
		seed:    "997f09c72b3a71f6bfc254ceb04af7d923d41c1ca0225e384b4dae8ba99d0ef2cf0bd99c555fedd7a17332a88f65def954fdc3f0d29f072d3278db8d8f70dfb9",
	},
	{
		lang:    Japanese,
		entropy: "6380163837921d15504675b5b988cc69",
		phrase:  "したみ あきる たりきほんがん すごい おくる たたみ けいれき ひめじし ぬかす ひつじゅひん きせつ ぷうたろう",
		seed:    "941530ba07db979119fa7c50218e3a19b404b3269018472f0a33887282c6bd8594660e621a7301959d5829f1d97b41cf583ea71dcdf6c48ba43d3bbc18c5c342",
	},
	{
		lang:    Japanese,
		entropy: "21a4662f8df81397a60b40de57a19c201b491c07",
		phrase:  "おくりがな おじさん たにん えすて そぼろ ひたる ついたち しもん ほたて のせる しほん けいかく にんち たりきほんがん えんぎ",
		seed:    "f1c00ce3275d5971eda50c037c2ca4b314f092eb659225bef5b850d81f714eb56b28ffd40e9f9321472cec859188b740aadf3a54d81a44946e0a0f264271f5aa",
	},
	{
		lang:    Japanese,
		entropy: "a7c5f9b069546fa528f294c1b89d6986b3e1910d02b6cf97",
		phrase:  "とける きおう しらせる ふおん けまり ふえる でんち こねこね はくしゅ はっぽう さくひん いとこ くのう はんぶん きつつき こんすい ひりつ ねぼう",
		seed:    "db1678a8e0e984dadeb5cf2b8d1868ba7cb6f11e93128ed67ca3dbdef10648815e1cc1be84c79964cd92ae01380c85a2c09bdd4b24e77ef91baca16226ff2540",
	},
	{
		lang:    Japanese,
		entropy: "c26bf7246667933e09b71783717a1e973686b7029516642359853c1b",
		phrase:  "ばしょ さんいん はんらん ぴっちり せんげん てさぎょう おんしゃ まんきつ そんみん たなばた たいら かんそう しゃおん ざっか いぜん てんかい しつもん えいぶん しあい せもたれ のぼる",
		seed:    "f24f64441443c646a72f1c6418f00dd77ed88ded7f1f697f22f6a515754b66c58f1c22047e44ca2d6af7d3dfcae800fa7113e201a5c46f1da8f331649bc89f75",
	},
	{
		lang:    Japanese,
		entropy: "3fbdf874d961c78040356471ca73d5aa2c98291e6387aea4671fb39a497c9e01",
		phrase:  "ぐんしょく やたい えりあ にまめ えほん はいしん あけがた なこうど ずほう こぼれる よやく こむぎこ ひえる うしなう せんしゅ すばらしい なやむ おじさん ぱんつ しまう てんめつ のみもの せめる きおち",
		seed:    "566b518cf39f4d2254beee956c1fbc78d4b87538d9813e1573cfcf37e102e2a54336ea20b79709de8d745eeee5ad3cb39b42ff4b4b747ce738d7b92d89ce7eb0",
	},
	{
		lang:    Korean,
		entropy: "a5cf0eb6756ab6b767ed8ed4b1989c29",
		phrase:  "이렇게 시댁 일행 프린터 일단 비율 월세 작품 체계 여덟 냉동 본격적",
		seed:    "92b90c0b364ca34a400078d3acb9a6cf04cb3b0c7469e7b0cc225ad45046c6083837c5f46ca4beea24012951c470d080fb91539c19592974432de4762dedaa0d",
	},
	{
		lang:    Korean,
		entropy: "389abbad34557bb7e1455a1b923d7195590c0b82",
		phrase:  "만화 초상화 피아노 설렁탕 분량 칠판 안방 일기 그늘 염려 빗방울 느낌 연합 강원도 결론",
		seed:    "cc2763cc65d4bb90058fcd60671d3356be81492a5566f48db20353ae13b565c747f9e597452b95848098acfd457deb24c6aa6cd87d33a891d172337995cc6beb",
	},
	{
		lang:    Korean,
		entropy: "47c5e1b587d6e4e5f77899cb544451c56c3cf7b9ef84f033",
		phrase:  "반지 당장 소원 골목 속담 수준 코끼리 과학 지적 육군 관점 업무 종종 식료품 편견 한때 한낮 온종일",
		seed:    "f5c0b3f197960b83a4f0a7714c16adf6308f29fcb69ee9d712222abc2176af0b5d65364ce666575c344025f588672fd461ff9abe51cb9bc3482692e14e42514a",
	},
	{
		lang:    Korean,
		entropy: "9a788ab74d4d74260e3fb9d581f206511b8da59a2f19e8ef1cdcf82e",
		phrase:  "외로움 주관적 임금 외삼촌 촬영 과정 말씀 혈액 초반 곡식 씨름 육군 전공 처음 설렁탕 통역 평화 시부모 마흔 한눈 터미널",
		seed:    "84ff2bff3ec509e21146f3729b8b4b719ea60767418b44b0c1a82604f8f5136c34bf9bd7849db4947e27b83b622706488d39a5253f48c3f3566fb75da70fa7f7",
	},
	{
		lang:    Korean,
		entropy: "d9ae5709d1352f3d2ae47d1fee04dc1f90c56ee758ef5c9965ede8ad999c0205",
		phrase:  "출신 수영 조정 육십 복도 원고 일대 연속 기록 솜씨 마찰 몸속 경치 저렇게 운반 글자 빗줄기 지원 식기 창문 출산 집단 걱정 유형",
		seed:    "747de19a6280384bbd7ef7476e7d788b7b5f8b83cf56ddba15bec92b203ed29f3b9fa97eac7c9446f8a9e2ba949ce5365f826c3c35be27c2718cc2e0c6d11538",
	},
}
