package poseidon

// Static data for the named parameter sets. Constants and matrices are kept
// verbatim in their hexadecimal form and go through the ordinary parsing
// path at construction time.

var presetX5254x3 = Preset{
	Name:          "x5-254-3",
	Modulus:       "0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001",
	SecurityLevel: 128,
	Alpha:         5,
	Width:         3,
	Rate:          2,
	FullRounds:    8,
	PartialRounds: 57,
	RoundConstants: []string{
		"0x2b149bee29246b2661a408d4cc9742d81dcadd4f169e3b741c64e11a27b5309d", "0x1cd2b41e2e56eccf053e7644c63293449620fa6b1f744e4970d30de26b42a2cc",
		"0x07d112dd77cf168e92a068a76744c93e493ded90272a951eeddfcc2dbe9d0dee", "0x1d29689f35a0ddfdd6d3e8858754a29ac7cd97d6bb8a4c8712b7cbe8cc94852b",
		"0x14ba68d571feecece470e3fd915e9defbfd450b439437a03c64a9e514268c999", "0x23b914cef9cbdc2da4ee0465c891c2833abe7daab4821d0a27316b763d2b059e",
		"0x0794cd048294dcd0a5eb22d63a0e75b4e2840734e76be0362347c0a030fa6606", "0x2232d139172b9537cff0c67a39432af4465679ed7c533622f8805f189ecf29a2",
		"0x021c92cb42f87adb66463fbf894a1ae39290153e62f1e12173e48dd66a488904", "0x2c71511891be78ee73d91a257c32daa0192ac8aaaa13c58740ac488c352680aa",
		"0x2cb8e266669d27fe161a4616b6973cd498a75ed87d088c2fca679e4088a9acd7", "0x026fce415d2cbadfd9dc6974bcf6a3203ab3573e1d78507158291ee70bc54085",
		"0x12b775a70049dac8e04d358d4b7c2e6ca6ad69816502de10a630680d3356ebbd", "0x29b8f8e01ad9c6695c20ecc242fe5513359b864e6b35027b426fcde3cce04d1d",
		"0x21d1d3a45510c943674e3ddd80dae7d832b948f3733a388d786fa5718acf2c41", "0x1f1ce33a66fc0f1300c9260e7c071ae8bd5fa8fe8bab84c321fa9351970887b0",
		"0x273f542c4636970876b0fa898346bc932e7925f8ad58208e5ae1e2bfbd7cbe53", "0x2b9c9d25d34ac23481aa1d32b0bc79266ef4b025d1c30019006b5a4728252594",
		"0x0bf47dc5955752a1af9f125b878defca7f85c35df551b31886f00a3b81fec765", "0x1b8db70f8c96217672cfdb11ec4bf23ea88708a08229a2e606d6a9ade68b0df3",
		"0x0be2fe2351d7cd24055ee4a8b1593d6d8471941dad5cf08d2b1bf358952caea1", "0x13aef9d2bec458e3f6d254b7461a7d19d50bdc7b1953ac3aaa8dd7f335cb4c3f",
		"0x02acbad4780cfeee2fc1204d6a8320b685b54e014a02d32a11adf4a5377d26b0", "0x1240637c372623453435c28bb66941cde05a7ddd9eb132268d964ad74dafb84e",
		"0x005bc31fbd4fd878b89beb885da1c928af0154e9f3afe96c6e37fec09db18287", "0x18b400374be5cf395a122fb0cc138e9961f7de85052319ff8c2bd9531cf483de",
		"0x0f73d5fb9b5ccab20f55b1e765cdaed3e14c105620345a33f0ad8d7aa829d4fa", "0x286f4a3789f5a544e25a7cd50386be281bfe6a5fccb8194366f8c6fb66e0ad51",
		"0x0f410e95849a2af1ffccfc0e061234cfab325aaa39cef3165faafe4c2e4cc4d3", "0x20b7319df0195ff417d53f50318d56bfd9f5551d218abb574ede8bde284be1b2",
		"0x2efa517786ea832366855a88341b90cefbfc77239d6b6c8b731ef8ee93ac5840", "0x0cc9c3e5d6464d5eed2104724596ce2797d0034e9cabf2129c10991857283b33",
		"0x0c8f00fb53eeae79054dace85b413e1ea360f8db42a3c021b2606e7cf1171ef6", "0x29f16ebbed7d3341f2e32d28944b6bfc3eb43d181c8ea929e8febde3ad314419",
		"0x03efe1ff07653b96fd624d6c36924ad2228f29a30ce57ec47db45ec1e5d5f857", "0x19297309218f7b144a71410d101c635f364b4c9e14024a67fb80db254add3fb7",
		"0x0141a3a89bce0e1ea36eed09e1ccd4ba03e89160e4a0489c6b52f2b6ea8ded48", "0x031e4bdd1c73a4de529914c2a7ddeb7863c94ee747a687c9b06d2b338889760f",
		"0x115d4dc1433afe12343c1353bb6705417bff6f4ae6e2a79de91f600d729098be", "0x1e6400b97933b663c3d826de3026c5cda9e46a96273d357b11f4afff418e5368",
		"0x108ec7f5dcaf96a33736703aeeb13a1e1578b32e3d3fb20ca0a44b59647f8dc8", "0x1a7daa41a83f73e9e738707617cacd808c9a6dcb1b4c1562a85413f4d4eab2b3",
		"0x1944671516c9a421087502ed882cdc18568b99f3f43cf81fe3a911601ec184d3", "0x172b235153f3562bac9ae7f64606d6ec13ac28b856c37dce0acd4fd72b48a3a5",
		"0x0eafbc94639b36aeffe967101a261ce45c5f30d3968b2b7831017dda5c4ef992", "0x12d0693c6ab63b2d904647cfa90fb0ead5e70dc6a71a7a4de007734f0074e36b",
		"0x0ccedab3824c44cb26c0a1e3adb4d361f56d0bc571470e8fca3fa8a2809ad8f5", "0x08352cd586bc904116aa5e8c895114e2e2ceb356a295973e9d49aed344d0ca07",
		"0x245bda9bcd59c13e59092e64a3a96b477dd19b09a1b19c17d236673494363581", "0x2ebdba8dd58b83bba83f487de5ad6f3453681c1714a6583ae9187792624cd71e",
		"0x0756973d00f43609bde9df1b0a63a8382ced1163a33529c35b369d593f8383c1", "0x2d362bff73b6581513958f53bd65963e321ad3e6a3bc31cf6253fc5a73c01f93",
		"0x1bf6b111b09e31b0d344c20963e40f6ea1f3c0043b548b69dae905ddecf80410", "0x186e393d9f668b4f86848033e4c28c79202fd7de2b37dadd694e8f4ccd2b8db2",
		"0x195930897c9e66f6d09b89b8486b69cc394eab46e7c5b87bedaa5c7294dbd451", "0x2132799ffb54ca5707c35dfe270c2cbccddb8be54f86fd44d5eba7d919bc0be3",
		"0x238435e8c2a2d48f2347ae7c9778d1e9decb149d9b1dd87fbd15d5681f592b7b", "0x1a8e10afecf14412d0ba144d5057e382bfebdc62ccbf696170c1f0ccf561bcbe",
		"0x0d11cc9f45cee15355712396831988b3ff3a312c18e884dd4b130bfc65230890", "0x026124f5486bf534054b288560726aa949ee15d943a0b29d4b8d01920d46262d",
		"0x2e57241ffc3c8440c9b10c423f2db2d962f54d24eecd1e772f9a028447e93312", "0x283346536c4847328045ce08b3d2ac822528d1b3f424b490efba24ac8949c9e5",
		"0x10430984596462e05111794d71177c6cb21a06540c6642a90d8e00fe6d91b22c", "0x1dc54b406d2f2f424074ae4cce6ec03ae4fa8da5656290d3fdd4e64761e5f8ea",
		"0x10655b9b66305cbe5568fef3d1caaa0f93e64260b0eb32d6764f1997114c6927", "0x234f6e54c276767ff668f2f43654a13034132beadf17cfc695f0720fd67362b0",
		"0x11c5ad0f24d30e2872924ab57b06a988bb68d70a4e4c089c9bb13bea0326fe3b", "0x2103957c2e782f4ac3e7f191257b0b8fca2770a44262ac4e8afb6ef59dc19c80",
		"0x0d3d2afd4f878b328799d0511b6cb8613ff115708275658553803a50896b7165", "0x223d4bacccb09e618d0e0229ee69445c9e4a640c24ea640837c21fba6d91b75d",
		"0x03c0e4df6338b01a12fb491c38dfff7912f2081b614d93d8d998d5d93faa64b0", "0x24936c0a68fe6cd4cb16158fe1efaa999c0088fa64f5e7684b9ebb343e597403",
		"0x18e0cf8852a8df77887c1dd31cdc9a5cac626aa12d0e42476a6dd62bb82d619c", "0x0f4e18d6dc7384087c2ae4d9aa57c4bb7859262268514d655ea3980b28b769d8",
		"0x26ce01fac6806525b3202c4426b67e275af0e97bbc77ea25aecd7766db66b399", "0x127bb5fbbb7e48eb0235324212b619c0715599e570105b9d99ec96c3a42a47bf",
		"0x2c0413553f2307aadf4f9cf23eefc1a2818a7ef68647647afe9ed1394bb00b75", "0x09eec9bf2355771227c986772750e9c36c821433a60272d50690da23e999072e",
		"0x20df71f2ff7f8807e703a8766efad340e62d24c7be8594c2d4f7ec186ec0cc10", "0x1ce9b1cd55cab33a3379c6f0c17136565a37bd2c0ea27aef5cc2f457a7738a3d",
		"0x10cac56db45af1e78e52b37ae3f4306818c53fe82d67a6027739c87aa0d4b194", "0x0ecc99e479baf18d7bdb5b4f796e675facb6f79f0d0a9b1a475c6af182c27546",
		"0x2c587a7a247c917db33d0d099991fd99114f2016b566a43f0c4ea58cf50d40ec", "0x2f276d75477e0af076f693b1b5fcecebf9df784fd06fae5547bcfd49ea185c87",
		"0x0b8a8348d338bbc854d5aadb898f7a55c61f9325c1521bff1332ee7d75532bad", "0x02c4549075997626fa4b6945e04f6ba773d80f1a4f7c6a6f93e879baca1bec7b",
		"0x15016548171b3ea3cbb688c75312577227d4a8acc6b27f76a65fe8be162745a0", "0x287c1e3e95ae1f273d5c513f2bbb4a65c1d09607411356413fde27aafcf53cdc",
		"0x0ed668511750862381afd781078ee0697cf3daa9e839274f4b4682e8108d0878", "0x013a1d88c6c28fcd13978d517406a97090d85fcd2bbf4efaa35877ff10445a3a",
		"0x09e496649d1a01185f68183da808ad11c3400d515ee0cdc821953ca5253ee81d", "0x08bcb31b45f1b2c8eb4d3ce77bbb754c73f3e50afe93e942cc750d71de1ebb93",
		"0x00f328ccd3ea8bced27e2369192b2bd54e2c776572e6bebf642a8f49aaeb3bba", "0x18226b27d3cf150d6d8ca6314058de779228eb38adedf7c391b4fb60c2114988",
		"0x00934d32de2e0aaf2566de933c2f0ce4826309be7cae2548d12606c929a5e39f", "0x2a2e2df8520dccb9a83031cb4f3859afe10890ddb3bd9421f63a2b4a50928354",
		"0x048933838062747921555d7bb13ac470d66e5a6b41e6a98f63fa0592b1a0e23a", "0x1e63f2e2e2ef02d9a6981cd4ada263aaa3b04ec77c8686fc710ee39f3256f3c6",
		"0x28e4bdba6de3cfce9dc16b06d0147a8646d2d05667b50a2a1df26b3c59ba2c4d", "0x22035fef7737851c20652a150281f4b8a72885031d374f8fa0189b99f3f5fd2b",
		"0x07c57a0025dcc723083e0140dbf6e5aa70558aacca01593bd3845e3309a9425c", "0x2cb343b9142be92d413a1b35bcf7de029c8f1f991260ce047e5b76e734a14b56",
		"0x207a607bc13271e6f165f58f0b3a35ac6c9ac6c59ec750a50d28a517a3324459", "0x2e7454e37b235cfc45c364a132153db71adbc726b8ac8d7b0cd18faf445a72fd",
		"0x04860adb476613c2353f4206d82f58fcc6df9d7b49f1cd52dd7785e38140e5b9", "0x104bb09cfcc468901299793ffd1dcd01c7b985a24c25fbc32f50b54961855cde",
		"0x0248bb3186c1d9a957fee479d94d2927601bf99240a07d9d7ac9f3e179cd0417", "0x1d9a07bea9980b70f6c8c7d6aeef65d442816998396d3c1c7d371c6fbb368a2d",
		"0x288e334fefbf958803e5f1a4b7d2ff36ceda1a3f6beaae174657dee77f42b37e", "0x2a62369f6642e58f4992b192af234550fc3eba43f15580b55f62432b40a3a402",
		"0x1e5d7df998e5041015380473b1a83596ca4a5c764da40810df620a4b644a90f6", "0x014024729f267392e3cde38b6c4e231101ae822116afc7e49902656813acea7b",
		"0x04746429a4c43d6cfdebff58a3d24c958cc1546ffce476c6e19e56f1dc2ce0ac", "0x10b478f67d4a67509f896b8060af0f258f336e39fae79c691df19e9742d537f5",
		"0x13c127251227cc112da0dd02a47ea2c9155ce6bca88918aa4c88021f5848acb9", "0x1889e993b6cbfa276780d8605593a84cfea941c1230199ebeb420e97c8128f50",
		"0x213859ec3d6cb453110a15a594b52998ad3f6d919b8089934bfd614e18726fb2", "0x2348090c67ecb16f49192404716f947224572e27880d3cec9233f72029beb437",
		"0x0c550feda9bb519e996996646b213d2ff9e6c039f3ed7ce4811c4636502e1e69", "0x01398f371233b6a2495126c2ffc72f3f94191139c49dcba2d54a3e0d34f6859d",
		"0x1e36c510395e83781b6194ce24864dd4b36c42e9b2b9b4c8008d873425e0c1e7", "0x2cb142c1de2b2429cfe9507c5a8fc70dfce573e362ff41290cabcec53d1ef9a5",
		"0x1bc3d85b880d5bbf50ea931fb4f0b50ff25cdbe6296a5a88625f03858856d80e", "0x08419c1c3360bb9dc8329fb2b5adf6973deee2b515786efef8c5567e67031119",
		"0x186a6a5c77968d91ea8492f62ecdd49b69bea9d4d61353b38d687df45216d5fc", "0x2852732f61313754643f065b97744e1e799bc29d98c8b66f8452abcee580171c",
		"0x125bbc048b3a4ed00800f474398a2d5d29a2ad8d554cd001b1c7e7d36e5f498f", "0x2986f6db4e0e3550290ba0724ccdb0546ce1f23a8a51915ca25405a692ce1727",
		"0x264b51221311447d2e1c469626de96dc497e10daa8410b09d435b8ecdb828b81", "0x27e9e2e796298eb1ef66e266e770b48f1c91d62aaf6e31ce577033bc78ba787e",
		"0x2031e52e8599127b9d64d1435188586d1b6d3ec95012fe81cf544d6bb471aa7f", "0x2cc0d543a15b671e4388ae49b81ef9d12eed006ef05d9527c93b18620b425ed9",
		"0x16985b461d5f9bce9ea9a7483d2c600c19bb9eba2602a4c4150205a27744a8bd", "0x22cc4bcfa003868a8d0abd581d851016a60ceedd0bd9ada05d42b32445702462",
		"0x299c63b08886408ddae189d8456a5f2706faed81eeb64cbb6486fe5fb2563698", "0x24b5ad8def5218c60a246dd6f06d4fa85f9b149aba2765d0c465f5136b39223a",
		"0x0d0a42eb352568f65725d1c2b8da3e4219386cc86c78cb660bfcdfcb07d3b767", "0x03417dcd9761c546ef248d3a52eac5d63818e92e5b0e65480d809b51d292aaf0",
		"0x2c33367a42fd6e153f087da4c11a5d352c7f0679fb2171d52ab0bb3f12fcf865", "0x2c2ac89913f1bb1f31a9c954a877d508097f4c659de48af7d74db41d9ffdf9e8",
		"0x1a86905259e2517c5e5b5a47e42afc79e56a8f12ba3f00fc6f71a39068405a38", "0x191bd530b5dc0633d2b188cbc88c17678179dbb24ef18a12eff989d3f5682109",
		"0x1309e0d7e9b3375517509636ca2965edac8ecf95becfbaa1a284f0258eabfded", "0x10b6a6be8e5a21768650ef508c33629bc6dfba773d9b8c4e853f9ac131557121",
		"0x2fa530b290a4be33bdbc9bb84ac854ba16c5d4df56e16db5847abb582b28bbb4", "0x2354b60c4423da9a05ef4d47837b5ffa9a972e44bce25c703c51a8a76e681de4",
		"0x1021784644e92e0c1d0da144f7434cd8fe4a3ffefe13ce4c86af7d34c9291e5e", "0x14d04c9d854bde0f2371fa5d08ebc338cd8463a58392672be44380ef2d2be22f",
		"0x2eb9b2a11c1cb01d0e2ebeca09cc7b4d804aa2798f56fb6cfa45720f333b601c", "0x22bf31ac4672a4cf48cb0519251bb1354d5b26a5b8d4c2deb2db426def816d36",
		"0x1ca104345ea47e5b2af3f204cdcf17c6a6a69a43b718af18a9ba105bd88fd29a", "0x03ea2fd4e151c3297d62c3b93c23d7c71e46fc4725342adcfe9ca4cdd9fc4ca0",
		"0x13689cc750829f7e767409c37d94a8eea3208c8ffdfe05116c340f9ad28b9ea3", "0x05201fe9b61bbcd92de2afe5208204f26d36a8236e46a5060658aa67b6bb2305",
		"0x211fe45dbc27073bf8ce43b22fc39e2597e1c7918f1f6280ae20f5c9aa08d669", "0x043b2ae7f42a64bc48f377739e51ebafccf96553045cf36dc98f3336d4585240",
		"0x01094fe9e0e81cf91ce25989cb04b6aa48cdb204fdb53c3bd462e4e018105e0a", "0x23fb8fcbab80da82e73c2ce03e93c1d34e1c6bfb93b460829c2b441ba5af1538",
		"0x04f3638f7125a82e667eff9235d1c10df4b5983f2473eb5ebddce08b6c35d5a2", "0x1460a6e770e5f6dc3071093f86e17c875b9461706e3a5caf609816bdfa938bac",
		"0x1d20f2797a2a5c801aeb9e2ae105c852a47fa349ee7b10f64640aad41ebf12aa", "0x025512618578e295a09e06482ff9f928eaf6ac01f06b0c392e2ad5ef6f5c226b",
		"0x1272f6ab38955a0e643440e995fe933297b5c6503b09bf1b97d1e1634f2329f4", "0x06d90516d82a696c5dc3dbec7c4fde33d8c90cb6401b836565ac8c962eb239da",
		"0x11fb73034401b7d98fb43b5a00b26344bd2cc45451c40f521783606c6fa89418", "0x25228dc7ff3560602ab004f406d32e3399bda278e146d32bf9e02f3621639a73",
		"0x14502070df48ef23a6db6af84da7327cf10e818e7358d467ff172d351bdc9d96", "0x21320cddcf586ae02e96e7f4976f4345571a27ad9f803710e1de3baf5cc1bf89",
		"0x0f7b9555a972bb65cabc43b1a478942589ae6af7ee898ae77c61fc32803f696f", "0x223eb16f08fa92fef07461f9d15bc6112fe4e59389297d6f64eb6747b50b51d5",
		"0x10b667024f54d769b2a2d03c460afda55f85d33dca6e74a55b214969e7af2128", "0x1e07519c0cbccc13b9bbe28abc98acd48d4a4333e0b59a0830fe03e9438c1f94",
		"0x0ff81bff9cf2461a46100f190f81b9ab9a882612da85152c9e3aa59d58081161", "0x09dfdf41f12801a9b1722623c422cf0e3a441bfb680fba3b58076f07c5c8518e",
		"0x2bffec21f321b2910f154c39ee7b68967279b6e21bb2e71119f90527aec531cf", "0x238d14f479c8fc5731356be9d3210c4aa209625298dff273ea7e06e4000c6c6e",
		"0x18db91c87d15277b1baa2df09b6ed2d6eee6f5c6465f3533baca32695ad69d07", "0x22b12b47214b0b394be0c27278cb3f134b9ad1824e0dcef34de40b50ad1c61fe",
		"0x18093c5b371688d824adf8f4ed945e3aeb1e61fc45b2c6de5c0f1c0499b69ac7", "0x2d622a8ec76cfd1e345797bf1f41d3524911753b9eeff5b162b19fa743678abd",
		"0x1548f60fef00ff6f79add2a7bca2a164f67e9197a580224a45c6c4886f30e449", "0x2b3dd5cf48e7fed93883a7980a5b43953218933b0f594847a199bb9dca025f80",
		"0x012f4c0e61d1e99c57aabccfa5d25cb454ff9ba618b3dddef5d5b0d58b433a43", "0x0611ede3440b2990c430819a1b38282534c31fcddd39b010c701ccd634cf7c2b",
		"0x12c844ada0a9233676a6534e69865290ab02e1aa0210094130b8a4bbdd5c5125", "0x0532450255f81e6d5c2c1be73eceb37627b98b48d4cfbc07f112996f18417d64",
		"0x081e0a742f90abd5859e040c73b7d079e6cfdbc2655eeadad23402f62e4873e5", "0x0602a33f8b9c022451d0d2658218049f88f3794931a2f0d9ccf14de310fa7e23",
		"0x2252925173c3ac3a1ace47387f9357a75da225854b1372c7d0173f6e6107c0c3", "0x25cd5ed66d1880ed0da78b793f559c96b278cdeff655c7b6fd0a0be90eb6b723",
		"0x1ec8331f9cdf4a0da88f86fc24d4d3f0b6c15881aa79a48e0c6a993e5c0ac7cc", "0x0f140b183d4060fe0e9315e0d02ac7ecd8bfbba67f240f2b1a741c676dbf55f1",
		"0x2bf24dffaad7444c5a0eb0cace067f73c5affc1620a7dfa8b6308772d9226c64", "0x17b92957bff045bf2c6bb48629d2dd2c2b8d1dfa5706dbd5f19c78189737bb8f",
		"0x2f1dfe0d41a67ddf8032e11e5bb553670997440545494079c7e5e630a067f07b",
	},
	MDS: [][]string{
		{
			"0x2042def740cbc01bd03583cf0100e59370229adafbd0f5b62d414e62a0000001", "0x244b3ad628e5381f4a3c3448e1210245de26ee365b4b146cf2e9782ef4000001",
			"0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667",
		},
		{
			"0x244b3ad628e5381f4a3c3448e1210245de26ee365b4b146cf2e9782ef4000001", "0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667",
			"0x285396b510feb022c442e4c2c1411ef84c2b4191bac53323b891a1fb48000001",
		},
		{
			"0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667", "0x285396b510feb022c442e4c2c1411ef84c2b4191bac53323b891a1fb48000001",
			"0x06e9c21069503b73ac9dc0d0edede80d4ee2d80a5a8834a709b290cbfdb6db6e",
		},
	},
}

var presetX5255x5 = Preset{
	Name:          "x5-255-5",
	Modulus:       "0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001",
	SecurityLevel: 128,
	Alpha:         5,
	Width:         5,
	Rate:          4,
	FullRounds:    8,
	PartialRounds: 60,
	RoundConstants: []string{
		"0x4ed550095016b0bc8284ba59d7b57e6d3a649ebaa8f31d1c05f346af712a9633", "0x09eb242cc652908f49ff4e8ce038ae8649c9445b4e080f9c33c9d7a3472a3a7d",
		"0x3985b488e3ed3d1b06f5e30b8a7d50230c688c5ff76b1b7d24adc10788c1bf10", "0x5070c70299f50fce7082c506ab0c9c606ebcc5a4e1c6129ed1c514da3c7e314d",
		"0x3c7c86c762a1ec1dd330d25b2edfe04aa83fe75636b2c164209defaad3c8ac50", "0x3839550b834aab8ac3aa01a2531d4ed37ece058c91933b55686a07379aff9411",
		"0x2bbc11f20307ba73b2561d9d08d3af19eb3ef41a8b45f9201b0c596d20ee6bea", "0x435eebd46bf61eaa76d389148e12f5207b66aae84a21364f754607e7d14b9293",
		"0x41cafd0e746c5b2aa5d081fd2517334b146bcc4ee5fce707da8913152d9d50d9", "0x12cceef055449336086ac727cf936c19926558bf67142fb8f1352a060d284efb",
		"0x6266c73641b87231980513b1d1277b88375ee2940a4086513b286999fbaceb44", "0x15569b31415d1d27fa7ac06dd930c8f15d930f37a38669fd0d154d467bd77ecf",
		"0x5fda0b820490d45295154bc31e71846a6406269322b5ea6ac81570bf6a1b9f5e", "0x22f5c0e6ce9dcd2561fdcc9dd58f68c3d114d661b5afd26744c2a0b3d69b19df",
		"0x3fa22b6c35b6818f287b70a9a4ff14fdf24b6259c29ffda82d4603f2c5ed6583", "0x2d3a43a7afb84121ff3ebeaed0deda25c17b2e1c4f06cf108b4508674eed0c9f",
		"0x259ba8b74c4000a78f06092b4ec7d54b2860732cf41cf787aba3654f3faf1a49", "0x46aa1aeecd78a6c10425a911f08084c7c1d76019f6737e7978709501a637e4b6",
		"0x3bdee606a9647ea45fab5db257fd02f957c2dbb960661a313429328cbf5fb578", "0x1415e151f7a0ce86f6b024bee958ba39f5fa1aa4bc792c5dc79239bda9dadff7",
		"0x4ec903c5372c641549ddd25217791f3b691f33623af238087af6af49c3ed0a44", "0x1a3a7333e2b667279965401653c5711cf1a69a04eb7fc9885aa36b3a6fe2ac06",
		"0x3486063002ab3afc8de001443f568369481365cfdc7f882144817499e573a4f4", "0x38cd0678163f68feb1e3f3894ab218d70dde5a4bae02dc837f07cb61970cb8e1",
		"0x6367534f29d2c6a1612f3a112cad7eb7d726c28873314b826cec6901d6d5b26f", "0x00771fe05984b65b13a0f3a60fe8bf3c6d37638d6654cb83d1bac1b1dd219491",
		"0x537fdc616d8c7470c3c207c18ef36822a38cffc1349260b4e74ca869abef3a88", "0x16afac299e12e3a89cc2428b93ba0d49a856cd975d0b16a4c731cf8c0fc46dde",
		"0x5caac00f110168e5734edb42af2539191fa2ea28b7ffb5310679eb58d8aa3f1b", "0x2dcbc881ea7fa4e6b43182487745b2a1f7368d5f8caf34f4dc496bf2a8a17a34",
		"0x0a8c0df18960be72466744cca7e818211b61d327d173795e4542b8d8326456ac", "0x269a9ab914fe2dba336cd375136a0b38bd6a22b8338945dbb03ae367e0973ac2",
		"0x1a8ff9d9b587d0151801e8048c7954f544afe287ad665bf0b2ee027fca8615d1", "0x5ed87c1f437e90fb722a03059c91a6f28e4a7ccba9a495fc74ae43e0c33a10cd",
		"0x3350a0d4e9ab3d19f138beeaaad1246bbb12d5cae2c594568f35b8e4c12323b3", "0x6b0c9b2ea3aec5e404bed0b8b65934d354e5da055f1d22e6bb23818bc6c9a03a",
		"0x490fa558f423e80364219302fbf6bf6b9f00e039e96cce8d33c080b9bbcc8bc1", "0x526adc81e41ce7aff2f712c01fdae7a3b3a09a3879cb457b6f200e2227182164",
		"0x3bcb1d38a0e1a6d4599862c2a82145041e1a120fe15c839c7846f144f1b0f48a", "0x6faf9caf574b60e9d19fde48d29b69e2c7df0c0b5a4b821c41f85beabb6eb114",
		"0x2f2437ea2d9809a12b39374e8d5534c8ae514bf0c9648f26bc0494c0ffdecfc8", "0x523324709c268668108c84bf9d73f06afb90d7a18a6d745ef33319f17cfaeb15",
		"0x36c7403444b17ddb7cf60c7b6eddfa23b967b431f263844aceae9422eee4b211", "0x218b04b90aa6f9833938e4f6afad8ea0ba4fc7e3952b580297748d74bf48fa54",
		"0x50a61af671af06ad6c47ba4fdfbbc58116a62c4e93ad554f9cfd25fce06fe19a", "0x6eb640639c6d8177b88eaf437166ebe2391d4fb58b2b12faad65a49e5b9ca818",
		"0x19e3e79b02716a80ccd2347cc625a60ca5ae8f9f09154f7bc4a0cfba0c9bd161", "0x2782040a0901410adb61fd5592c0be925c8805d980bc8684d1b871ea3569f1f0",
		"0x5c7df5fb47dd667fc65b690a04540f190bab3f17ca9ae10c98d462818045b072", "0x226626b1b7714aefad5422e6226393faf838c7741a7ad411433f68b8a168cd78",
		"0x018d1aaf2017295bd22e8b31ff7f7cfa4648d9767f47625bfd54f585083e75e3", "0x11294cd4d2d989c8c7d13f2cfff8a31bd4f1b2dfc0884032e5321aca86123eb3",
		"0x3c6521e689dad2e2f332d035861167d53936fbbc97563b22ef76080bd0a4b53f", "0x26fc6aff55abe7c7782a975d9c0e3b6113ac3ea1e3a25901e54571910d6d45fb",
		"0x2824eddd2642c96164f46b1f50184e16172e2516daaaeb01d18c673e1695ae26", "0x2e3d32c83984c980c521552a5b94162a32ce782571912b6b6d64865fcad50e33",
		"0x5253afe66f0618ed08d392df209f3cb576ead8b5c9edbdc05a743632a75957db", "0x589d26072629121b5a40b31249ee839c4c645daf69a8ad7ceacb31de6fa0dd90",
		"0x54ae040a644d1309b9873c8af6cedd0d0961eb0378fff75dbfc456782c4fbd20", "0x6ac7784a8a087e0144c32e10937ccddfd4d7e2a99391aee15b673a9961611c25",
		"0x0889d09fb02d53aafdd70cee3af1475149f0f4140f4ed6c4e71c610a76178ce9", "0x0583539c7104e827d87ce44705ab645296ac05463f5f55453a788e6a2d84e02d",
		"0x1d7708689cd3be1c7513eadf4b3f1914112ada950135c79979b92923251cf38d", "0x4279b235bc16bcb1b829857ac91723469b97ff0afca30cb0d0475afce0c32cdd",
		"0x4fabc16a7bec634b11228ff845e967025471ad8dcab9ef63f7daa0c586bf6f1a", "0x3b157eb5362bd442f28e7b47a6bedadf968d1f75008801551f910d99a8b147f6",
		"0x243de5cab4614e9f31ad56c16b3b453b49187f591a97a56e10e4bfd730f74462", "0x0c7a1335800018498b4d74b83113f19692887dcb494ebb389b601b7245b718fb",
		"0x62fd71209aa69429b4f39523038d7fdd215f4d3de3888827ba04758b4cd9e2dd", "0x703a29d9a120d2a7bb1214ea8ce6f80c79ff201217a8404aef4cb35e2c88c5ff",
		"0x6668ce06ebbd9afa04f9531ec445f0df6268b83f414ef6a73467307f8bb6578d", "0x498352c870bf04c2a08f5d3334bcdaf9a582f19f1aa0300a365c97cf21b621bb",
		"0x0b819a131c2f1f38eb7a938b281ea451a53857c97a41aa317137d82f4ca81245", "0x2871ab7f48150d61ff210dec60bfb785391b3ead6934adaaedcce74723736ab8",
		"0x5808936d5f919fc33e7516952c1b51ef9d692e62cdf6293eca5588533a49f801", "0x4c3c57e22548b5e1a8905a00a9fec93702ac3a44e649018dcab3cb2b6c5c5fe4",
		"0x58ce0fd64300181ef05d9bec2dea201b096dd3fb58e7e4adb18b1028f866173e", "0x623031f9524d28fd809a512dc8a5db7534aa2b8a1e8bcfe94f47903160fe96ac",
		"0x4c9cd1a7279c2320326219d06cc83998b48d38210385e81c3e47a0d71f913ba1", "0x4af03f6d1bd566422a812e75cc066388ce412bb43240fa2cbff6ce02e2a7b58c",
		"0x3e21e5aae7768e3160adf35311ef9f60f4756782cab7d472ef0c573c69f55a82", "0x32859197f3d00e34dcdccf2b79a32a80de220e86fb3136a5d9899712eae1daef",
		"0x6f07046238cd259fea88d129dbae2f50ce73c4497a6264f0af7a22ad511ab892", "0x69a6df24d752ade665113a3290ebfbc5d50a17ea473424871a83adad7b4ca469",
		"0x71bd561f94b57c7eb1e289e2622f3a0d42e9ea97bc5495f88f4a372316da12d0", "0x47e47d0c8065dc0e39d0f9ca3b83a95b985a6829875109bd44aa1ed30cee633a",
		"0x20fb62811721d6c74284fc88a58beb27a2c84b75655e7ed62d22a43297db5b64", "0x5638472a3b296cdb06a4249973aab54c8dd16c352315171d6b9f9f25a13b316d",
		"0x5c623ff7c4a1632d621993c38da23560149f98504009b7d0cab1dc0cd14f1d7a", "0x6612f7f5bb33fdd49893caaaba49573d7da05479c01b405889837f92b152fcc7",
		"0x654d5c978cf3dc62e416fabfc41b2ca54699fafd1d20010cd7e28e2701f4e710", "0x5de30ae182782b9f6cb894c4191e5f83cb1241587a8b90e9cc5a04af4ea3a034",
		"0x0442ea63751f4ea8dd36a47e6ad635cd9a97e739c1fbc9d7fbd7b59f3634f9ca", "0x0d69673506bb92fdd0773ee76d2dda11671df770a4821be6a53010f8240dceae",
		"0x0c138bb5a663b492b124772547d5cafed0dabf3903f527ff1395a89f139e77ec", "0x16be8c5f956af45b0696ce6a7cdb55eb02c3c599a2e73f4183d99d8512617943",
		"0x340fc0a7b78b92f43a7897d89316e432cdcb9c71e59314e703e58fc7943e1c3e", "0x26bf526b3fb302dac30383196e9abdded5c2483113706c766b7585b91092e2b8",
		"0x6b7762723d585fbfdfa5d3f9b4a0bd78fb616ff01a021f3c07725aaac62d6f22", "0x47d460b64daa843e26fcdcf22688d2ff7783d91acd8c0f32393961c7caabf63a",
		"0x2c2a2f7822f0e0a32fe49be2fd213aa99703a7b24084b9cb4af701266a164f5d", "0x25123791e39e1e1109aa489ada9361f8dc57ea3451c9333f87250abcd38ea67f",
		"0x48263968f27244c051d6194ef799b37195387af89e6d2a80fcd94a008f3d6972", "0x08536ba0b9d53596d358fa8f3d45c081b6e72ad4451a3af0dbc93a21dd1921e8",
		"0x27580a3c371da09630f13614e8669a7c6bcaee0f2c67fbb1d2be688340393a32", "0x6c970a600241d83cf8df9e99bd594aef534dd412fdbb00cf4e9d4bbd77e62996",
		"0x4c5c56cd2ff3ec32c38cb9f4d4d6c730772da825c81b55d17ea5ffc6987df13f", "0x0700469af8508a91d2c9c161600dd697ab75048dd75f5ce14174d604b352ddd6",
		"0x48ddeca8a284c083a6e9b5a73828f89c0459fd1146e07e2de0df4e09f3c3eccd", "0x61fb4c59f329691ec2e0672f3c579cff080d4b962466ff3e9336ef849c1a9c6d",
		"0x3de96f9d62fbae6eb1b76b35d120e4b78788359b1dce025cdc6581699733e788", "0x170921e15b9d6cf3908644159e8d00038e2c244d1bcfd2fda8fec74ebdacdf10",
		"0x0ab39a5bd1b45cdbb40e6568e0b7c294a09f09ebafd7d5edc4dc09e60ceb9f98", "0x2ee7ff7836822a5d7d7ee32e76dbfa7deab8944df465decb204591a9a053813c",
		"0x12df258bc2379eaf8cf79c3a4162117e44bf6574891d8a0292237f1266be4bcb", "0x40c71bda7d5774634442fa7e4a1661b191a0931d05fd67afc9e6e2d916e592a6",
		"0x21a6b19622336a11dec174779bcd686044f54842561a34080514bf9ed8f295c7", "0x67f67728564aefe50e935d7faa63e4426db04838ddece5fec0bbcc63320d8d3d",
		"0x52ec2c31f52b7e5cbf1de8cd6459c6cb01d9ab0e5389affbf655476cdb720dca", "0x13ee06aea9c23ba0aff8817c3692d0ab201ee872cf2c36754714a6e6408044b6",
		"0x0b3882a284e06c0204ed3e5008e24dde1a8609f550d25cbaa632e28df7536b45", "0x0bbf38dc9b0775c43118ae28fa6837e3beab5fdac2f39d84a58f8569a4c25128",
		"0x633cd751971d47559b37c4c5a58858274d0d06c06bfa788a72b1a9a0fd915b92", "0x06aecc8b54209821b76240126faff83875394ff8baa4186a33315f035bffcf70",
		"0x5c58cf53550d67678de03408086507e942ae57b25078dd7855ca4197c4feb64f", "0x5909f0b2fa7a71be0c1bf338def76796a693510c4207292e017b7078868afecc",
		"0x2c1dc77002ab777496b99befc899dc3771e25bb71247dd24c2df2304da9ce4bf", "0x19a7cd7d4e24138ca418739c3fe35a0db07f871361754431f96de2a1ed7f629a",
		"0x120ffbf061174287e1258941e75e40ef5c872cfe8f5b65acd80a1efe75a7bfb3", "0x0d091c188e55c05778fe38b289bb3a19fc654df3acd198109d64a4c14b0a6f30",
		"0x0c810881347782e4eec341d6386127d644cb765493b15d93d9e62d0de11fbb9f", "0x0f5da9c6dbfdf87e6a87f793ac376e2beb265006f6ec5d1e7e77b59ec7951ea0",
		"0x52fe9fd8a388da44615782240a86ef7219e75c284746a8701895c1a82e07abc8", "0x2c05a8c6a27d8967ff0bc83d02f9e2252736f1e2e26e756837ecec47d29a3bf1",
		"0x6f847d4c52e62a905808c45a0d11f7c7f4fd97d1a8d709005ebebbedf865aebe", "0x73cf76f159692ef94a7ca34bc24e13b93f78d0f030c4ce5e9cc011085df9a1cd",
		"0x333e860d9196f24737e5db6278c7396db5713435b60321233671165f3771537b", "0x51b26397e3f4a167955ea98d736e74249165b96b134f288723d0959af2186425",
		"0x23d0d734090f2989d020e2ce39ab717b8b5df8c73ff85bf63303a7563384b4f1", "0x60ee46389c8634e82f6341bc05a9be09d6f725535d02110c7aa484f4d73d9af9",
		"0x56f358e6a1e723dc5f33133a9791661468aef33b2c9c546f784c7a13f5c90c74", "0x01f272afe85d05bb3073edc938ca1e156643dbca79e73f9fee41c94b35a65639",
		"0x5ebb991b1cb78cc2cf42b6894ccf757efc037e2fd9785145786fb0b8aed948bf", "0x0f60c176edfc047ed9b95ef3eba9ec6e9772c100246e9af3b4d3ab16b0b64567",
		"0x4e2efa7f02052b72c0f49dfaad3c9781f730db34b23bbaaaabf19ff93a09f948", "0x50b638291cc18e43241d75c650187cfacb5520bcb498f00c87b6eafef503b232",
		"0x2b7007a1f83eed9580d449d0e26dedb51309eab2c1ecc62b3152189b1bd23674", "0x29bcf190868489e22660ea63943401226e93c34232c3fd9a3643455922ca9140",
		"0x11a332da550a9ae74bee132c64a7694fa645e7ffb6c9942d46d890ef5068f72b", "0x72ff83cff5b56da59b8dd0b9fbe504358ed92abe75a7b18f7dfca34512b5399a",
		"0x4fdee7a3e6331a5498b5b4b2ddab487602a668172e58bd62aeb1358dd6d9d5a3", "0x411cb7304bb5abd723371603e4b306d54fd327d3b51f7252d1626a9469642c29",
		"0x6986d2f73331f13e299199cba6d07cfa4a6dd76e8a375bf7cf601e72844076a9", "0x422bd377861d4938a1877cd5ac494725f27048b12a0e37e80b279052825854bf",
		"0x493065a9bf4a86726e11fd07f130e1e4f8fe31b8f7e35e6acce4b4c865a8b398", "0x0388660a6c2871b06ff2819fde1fadc30d9ec909853cb7d9eb4f3e6736423a70",
		"0x4e3bd3ecfbb1aaa3f67aa795969761c603428e9a1d1181f87c1098a3649fdc80", "0x4e8870498072f46038dba94d6ccdcd0ebd4e77c7d60a313e507796def6ffb8de",
		"0x1df50c3b657bddc3637dfc4d5995ba49a34b93cfdbae39c0e193b29e717c0aa7", "0x528739c8a8efdbeb96386abd78db0364f108a71237637d3737dbbfbe5be2ed45",
		"0x340dc6f70705a2549550d4d4d52b42af0ee5c4b4efa539b3f3c36353d686d57a", "0x202b32be866972a1527592d9dd37e0dd08a3250e725e9bb3563d6ece8b56ea66",
		"0x6aba2c87e514c594e49b66a0e160fc6c7f118370a9618eeca85d6e132cafcdb0", "0x32bec475db0c13d0319576fba8a3fb0d2a5f460887ab029fa656ba2b6e216413",
		"0x279f2a97ae1c92a814707624e028648223ab36e5940d54311a2d7e3617b20af8", "0x2edc5f1c6a31d2ce83f7ae4e9b9e96d342d430460e64061db2aa23f776baf83c",
		"0x4bc466de78ecdefc1fcdc1739e3d2fbd806216827aa94ed3418632f9f37a0acc", "0x65cfaa076574113030d0ed55401b61e73b7e26a15e54b87f4e52058e83384b41",
		"0x32cbfe3562d64a047715d5beb9db8da65529741e9eaa2e922ff063040539bdf7", "0x4a01137c41f5ee2881ebfb4cf22430b2056ab2ab5b5cb54e0af8888a9111ef8f",
		"0x25e67fad96826a05130997c39c1d1c3a095cfb27118a0ba4bbc7305250f979df", "0x251ee4edc7c15187be4631e987c941d39fb798ca66efb3463c46012b778a5412",
		"0x406978b991848f5d4b248eb1e8e3fad85207b5a34f7b0764309b58004b096b66", "0x6cd779b9cedeb18fc28f7f8478057a67cb2b8daa8bea2644a0153ea7f614ec64",
		"0x290076bf9ffc46df7c3e09ac76b10b7cd6db7fa2fd74207bf963a7c1a1177245", "0x233ce1859796817d0e1e17b9da9030f97f784f4a18a26b9740d4304c112927c9",
		"0x5945ea22d6359353de79548567385409e0de5d0cc810a13c36d4c07d7ccdb807", "0x085082bc6b9236b0574e0a0e67831ff9cd12ed42974994a3a85d5c5ff9f3ddaa",
		"0x43a56267190ce202df7b38441d28292fecde82d76f2e7bcd4915d13047dadaa4", "0x231914c5545f981c226127ae73ab2835e8e502eeb1b143c814de172683b4f5b2",
		"0x2b9ad4a6dce8501561256aac48c6e544c1e6c8c711d343e92c51294b9d4c3ec5", "0x12e2de62179a53cbd31b7b255ab4ca4a8370df50f42765f95ebaa69ae8811bcc",
		"0x382fa51621ea4ae3082add14a04b9e4f3c523c383634e116f1f4814e3a849935", "0x3bea56fa1970d00f72efdd40d45f3e0fb3ef0967d5f75b626ce8c292bb601c56",
		"0x1a7a13e55d68ee5e62f8bae8945f3d18ee564e3c64a676ae114f3b359efbfbf0", "0x02755db5e78096952a48d275e2c8746a4bf2c0f52adc6d9bcacadd1c2d67278d",
		"0x625b1419a89ffa3c67697de8e779d0f78be2e2bfdf1cc854d8356fe29e864858", "0x38e5b1a7dda6c033705bcf043d7b79c8c4782cb0a0e6a4dcb2b18db42ca95a67",
		"0x0394fb0a0c40e8d6abbc6d5e9b9b0a58a43424087a3c0c6895c9d68dd8f5292d", "0x0aa956af5b38adab2f4e2f9ba0c30612bba704a25ff9da75b896a1bc7bfa769d",
		"0x2ce8f50e1aad06b169f17961ed185d2e91f37e4b4287f855084eba5fa868e9ce", "0x4846f91780f3e3b6ea54046a4a7ab3945a4c672f58109b3c7aed43e8d62e9466",
		"0x6cfed7a1687e6a9098b9cf90cb2e8e6c6bc3aa404fc0dca687f04b39119c4645", "0x68a3d2cabc09f4d29d8590717690d9f0950a040680ca31e3ef684f45080061da",
		"0x512a68d12a4ebb0975a8c56957d0fcc18ac77340bdcf023e1bb778580eaf6a72", "0x3ee66e6afef5b6857d07c17328395fd979d0fec1234b9d267eabbaf55979b652",
		"0x20446f2f009ce8e1d1ea1ad7bea8cc9b30831476953a66c70fa46ea3591b77b0", "0x66fe958a6a13f856e8fa075d82ffec75f55d879a752fb7464b7b21efe7b563a2",
		"0x1cbe1d705bdbb6702b8f393ac8b85c39c98c03a0dd0a9ba4cc5c0ef2b6554900", "0x55d82820597d9ab6bf1f928c5a534541c64579e87f17b7f8fadba0f67cdf465a",
		"0x327f62a8c9e719c8d792b20b0195a8a3cf71ed264c244bfcdd893c92d946937b", "0x66ebdd84f8dba5df627ba06b3a2d2f2d628666be54a8b67dbee920e9812d90b7",
		"0x12c981092707ad544914e6fd44a6a41e0f905b1acab85e05ec455c92998e72d6", "0x2942a838870275ed462ccfe7ce3b0c9f6e99a1c81ad66a5c41920bd556534551",
		"0x6941ce665d7ccfcc70069c79f1cadbb900e9f34c971eb82923216f9ff72ad06e", "0x21bd11358b405e67ada1a7abf5810935a5af664ed08ad3ad6b8ed43159e8d64d",
		"0x2bfdffe213b10e8f57e1c5053b9058e2ee3e9af1c62e6104d89946e0b622fca2", "0x541ef047372a233f6006aa5db1a92aed75b847d64638464cae4f9769a4fdf90f",
		"0x61e7db1ef868d7c4c4f4873233fe97f47b5b84bee452028656dacb19354bd8cd", "0x6fdc2da8c067cc38ba6a2d86c5e98520979546ddcc252adfc32f89ab3a46a057",
		"0x4a362b468631bebb389d1ad826ee16e78b0d48343ea59c190b909f52deafd066", "0x43535252a114937929ba193faab2b0a2503443f9b553313460c76048b071b8a7",
		"0x0c78b81276a43173a6d1ba95a736d06cf6108b0e1606bdfdaa116a6f183f853e", "0x5389437d868506f40640e7ff5bae9511550eaa9604584c0c771f83b13ed45304",
		"0x0c8bf72e84960ac78937b6449bdafa52f2ce4ff6cc760406aaf64fe9e9d3dd7b", "0x3849b1f7e6933b1bcc6bc056e8e30024048cdb2a426551f2e901864f1396fe86",
		"0x628a8f15d6a6c3f2f4e4044c9faeb4386bd6536abc489c8cc421090a682bdc02", "0x112287f3bfdb0f7260ea1c7fbaf416eff06a755be1070c530381d3dbc3028769",
		"0x2acf89970a214fe35e6d35507495c52200996eca855c1cfa736e9b4a560de295", "0x6046b88d83e27c78e9c8b470a4362e51f6b446692be875f31c76879834d367e8",
		"0x1c12009194a19be3827624f32facb9d6154eacd9099d8740b7cb2ddb2aede7a1", "0x05849e87777fc12d90cf6c99bddb63fd3794d2c43df82bc77ec1eebc747af08c",
		"0x5ca09900b2f292d7d8876cdfa087d81c29ce0ec1a93849905bf5804d4c962e91", "0x41eba392ed911cafe40c7d301fe5ff9d2411cc0a98850ba32b0e5db676db4801",
		"0x5f3973f9cbb04a0dd19a5b6bb8ca2af16cccca6eee256335c281d3e96fbf9530", "0x36e08f98feecf0213715af995851744c70189663bc219b69f94500915102bc47",
		"0x6ce7b37facd5f627ef1829bfffb09c9c734d49f759f10079326e4f51a85e2f27", "0x61cf801940f3a065ba895eabb5898b08a205abab61d0c9b4696abeba1e38df34",
		"0x3762c0ca3e03d8fce821e085e70b4e27ff34817994a59d62bbef1d9d67612e8d", "0x474464de24a512a195e75ca5c394a194562d19badab08a07815de487f49ecd74",
		"0x258ca1b86cdc3c04c3e9d273d4431d5634d4a7565f9dfd7c3800ac0c05492f00", "0x08a36f3183a70c961fad3082a39a9320c4de354e9e40bcdc794c314f63425112",
		"0x5a4100fbd0004f4878d3ecae7c872d2dc9e924c797506b41f4fc7f70dee5397f", "0x5e659cf25a11ba75900eb7a2f3cc1cb4c289415b0ba600b3c5db5b0f4ccfe3e4",
		"0x3eb4daa871895f8aaed6f96a030e05b045b57332acd0ffb82b5f3ab48cd147a0", "0x21e7faa4b55cbec236f1628a076f7a1f4770bdfd64c87b828fe0e68cea9a9186",
		"0x187a86e4e615f0c4c0058930c8b77ebca5e6807c7412692ce6090fbb64a0dbba", "0x184c89af2c22f0c48d7e84b46fe0d8bfdcd4f04a2ae3274b1eca86c30c48c23b",
		"0x33b9dce782a8ad87f51f9fa96cbbc292393e62080757d9f4762429480516bc70", "0x12a95e3ce6fb51571637dd62653c83ef280f36cec9b6cc8a823285239dd870fa",
		"0x603bce70de00762a2f750ee9d13b497f29475852937903b069444d2ec2c3a556", "0x37f4c5a0dd320149fe85f0da8fa4d3fe1a0eeebc978719b709cf1354297ec5ca",
		"0x66ca7b1a81ba27a011f8af152a708859335faa5c8c875548884c040b49b18276", "0x3aa3f199ec15d84c7d2bddf649abd255d4a21dea2c5f9517da258a5cf55c848a",
		"0x55d2d19efeda03e59015c86476c465b44fe3687b9da0be253b4fee13952db155", "0x39b9dc85aa9d6c1760efc2c5fe4a80d9d339ffbc996da773329370b28cd8f093",
		"0x2956b2e5de218206e2987758112205dac969566c51302a972c04172c120bc07c", "0x4f3b5f8e7546757a4a2d8155271ac5f36127b33d75dd476dd0ec720a47a659d5",
		"0x2039fb85eceea6856ca316191fb12c45f449c9dc62d46d57c1400ca75270e0d7", "0x047e3eba9de054d5ff1089253a054131d04b99f86016725ec2d17ef1c7b6401a",
		"0x01294204d1e8f09774716fdcfd88b9488a31e75e0f55c8929d06b15589ceaa2a", "0x051ceafca0132644a7db88a89e7a2d8a5af879c757954d3d45f426e34b6b8015",
		"0x03e34f91b270b2229d25eb4e11e9153ba68fa8f984c735ba812fe791c2533826", "0x06ecf4e5728b853f39a1c1ebf69181f6f5df8b7cd537d987fa6abba6439673eb",
		"0x69651cb2d2b66fedeca843bea42c58b60900cb22c089c9a493543c6ca8c2eb77", "0x5412605e1258cfcc1786618e824b9006800c39b16e1ffa119780e177fa789c5a",
		"0x2f01fd0f7fc8af779796f67dcc3bc95eb1c2c2d2f0d2e33bbd47fbf0f4f3bb34", "0x2126f0da4cf6ddf260e2537a2f6541cf9df93569e1e564ff1bd188b62b37e1f9",
		"0x6305d5d0718806ef977539bb5ce963a8e2a3ea6574af5f56fc7c63f8bff9afcf", "0x15c8d1bc6dc5f52e5a19f8530727e4d2605a612291029c8fcbdcdd7f6f9ea307",
		"0x0a3c8a7d0129c44ab1e81cfa5550cf7c948f22eff0ccc09fbd19d0cb684f160d", "0x20c0450d31775dda8b08eb8b4e0abb5270002bdc875842c26457c62a054e46ad",
		"0x6c25796dff83f2011f090e787a7d3c4db1f47852d8d11770468dfbf3b9e5bf65", "0x6dce2a87bd086e41b31fce975eeba14a8420d1f1582b4ff1e7ee8bdc6decaa11",
		"0x4bc1803299774f214acf672e328e6996735a045f456f6542e5d948f80aa2cc92", "0x71ccb12f73c93cced50526905cee8a0244b99695967634bd8c18143d008212a5",
		"0x19307f622aade8c21ed84bbd49e99af6a86a5472f7ca8bf1118d5dbe155afc8c", "0x05c90e113861291fd3cad68f96f07865b29e0194e2cd83e6416599247bbf0dcb",
		"0x152f58bef651e01c252f4284ca638ae2f35d329c661cb9b6bbbbca3944a0362b", "0x28ec6d6824f91e47807e127fd288b83d204f2c1bddd02ec22cfb4d7ef4a7f6e8",
		"0x042ddfa26fc47c6a1e7d5888e911a41e36251d59341d423f728c724ded18e836", "0x132afdb51ca11294b2c315c4da84f26d50481dce3b84bfbcae9d4c947b0c67b1",
		"0x101c6c29f87b2d3068f509d76ff3cbfabe7db0827aba13a0f00d79f68e7376ea", "0x6e321bd7a4ee0a3f0dd29d6e4bde4dbfa5a20d98d988b9dc869d01dd2a6f1e18",
		"0x733f97b62772f5dac3e3a6ab1451de1dc661f849d67f0c2e6ae036d197854888", "0x1af30c43826284258db5c60501345957604ec7e1938651c2e88cf04e5aca1637",
		"0x460add6e862b9deabbb24576c2b656f6d686dfc499b5ee4a4b5e9fce717a2b14", "0x444226b487a5389ff30077428b514bdd17ed2d1fa1a949f5dd641ab5b15f0ffd",
		"0x5fc42a6e538b4429bd568dc72cb7df5fa101051604920e1d7727fea09dc36892", "0x2278eac76633a7e72bcd599d6e709cc3d90ec6e858860c3b47c11ade4a69b28d",
		"0x55528c088860bd40ec4508c9c4700a8dcc353f457c870c6efeb08598118bd8b4", "0x54e6df6855dbe359a510639069d4ea575b1a6241a1d317ba2f7bb07895a9e3ad",
		"0x414a8c98635efff0ff83fe295af1eca48354110027702465066ba347c58e88ab", "0x0713dd59ce6935de4c7d78bf0f3813c920369b83e67de57cf8441d0d565d6e2b",
		"0x627f778dbc3f5aa46349584ce087907e90138856f4afd8972284e3bb7d428f69", "0x077a0eedfd23aeeb282cc51985dd0aa31be9657ad8a13ce90441b3caf22ee463",
		"0x07d0141fd3a026e7c49152ef51266a6cf45c6dab80493608cb4ff3826dfe8e09", "0x1ac600c4bc5df0c94467cd5533000578f41c9eab756827de747bc636d4de47f3",
		"0x582e7a5653918387cbfb5988ee4f6f34f83a28e6f113f2147785c1f7511c32db", "0x431030d90a74fb1f9f0274740fea48db8f0586d254b7cf28f9a38bc5ec2681ae",
		"0x2575d468e362f69a93db338950563784298e00cd836f45053bad2fce0a44c7ef", "0x275c03b995b6358c86406d2e15de1e552fc889a328964e4e679d526da948de88",
		"0x5e8e34a5dc9d73a32d37d789e9ff5176fd9270173a9872a829750a32dc5a13dd", "0x51ac373c8712dc172e076d77cb5c20b1564199161ec33a9613b2c8592de89159",
		"0x4fc74d5c79e1390f9775acc59ba5c63c6b8ba648802abdabd5622b41ce1fba89", "0x384637c4c66dbfe9ed557e4309eb30639a6bbe21692354057d3bac11b12e0c39",
		"0x501317e53714aca57139ffb0f3c0527cad3a3090432ea7fcbc4bbe1fd1b4620e", "0x4b8188e5924ca9b7503f9c527a87da4adb6004001e4b0703fe4088b6724eb0dc",
		"0x42c45aa34ae6aa8405c0a53e3d91e7bf9ba228f896a72754d830431de7adf0c6", "0x2363e27ebc92a57fb2091d94f1ff7051bf72a3a8d37eae4e36273722faea0942",
		"0x3a52811ddda447c5d8c2196c253d56310840e415f7587f35df5fc1930021597a", "0x0baf098aa2bf12036d401692ee165d763ef142adc339290c1a24239a75dbf2c0",
		"0x0878f74ec586f2e2c010daa5620c94a752a7bd8bf5397f29d589bcebba2e9feb", "0x16797273a52347451aedb3cad24ed423a12798f7bc48e440f9f481ebea185ac5",
		"0x61916157191ab723ab6f903a2f3b447f1ec62b15602c54a3292083966561e646", "0x695032c504b42101950ea32dc5d16b536a62c91d6cd97ce1389ef3f0a3007059",
		"0x34b2bc0b69aaf4fe69a13314b550455faea1f0320117f35365f2d3c0b9b5e715", "0x5bc476ec16dfe05a02e323484565280407e6313e2d2ff445e504adb6459feee7",
		"0x34874c12e630db4da4e1b428ccc7abb824d562601632848aaa52470a43776610", "0x100961e09c04c9a88042b44912541ce1aa74daa4767c2a283a0fdf5d7f35d73e",
		"0x5e51c9231bab9044c08a5f7f498619910273b13aa3733d6189fbf79213af1497", "0x1e2f6a880cfa7dbb55c53373aa8683b58047f3ebe23e1c6fc156b5c8737e9de5",
		"0x6d1bbeb843dd265aad23e832aa91a9011d76ec80549c274901ffb59e2c285d04", "0x0cd5b14ea359e3a5b026ef3620bece5868220362cb50786de958351654d99508",
		"0x5ae2b653f44b45ba1bf98f7b61fb604be8d8490b4b98a59d2385ab00727b1264", "0x4950d049f08cfc0acef9a638ebaab820e2919a95c14b552b6506e78fd58e579f",
		"0x5f2da7c82569e3e1162079e16582b493fde8db0b364b66a31baf13735cd7b6d8", "0x5f29b96d2fd0a62156e78eb37be8a3ce37b1cb88b1fb3edb2ee9a472f598905b",
		"0x570f5f68018801590d137a3e51d7c5d52839207cbbb70d32abbc1124966e0605", "0x483a7b9c3f8101d7c3e5e1c308416b1b55b6bf4da057e548dc8d81fbf8f261d6",
		"0x4db68899837ba03d8e8bd509c0af71e54a0da7ace9fa4d59d4515b861d1ffeb7", "0x687478d992a61d7ee1331f1e2ffa68a1681626c1fdea9db8b0760a313f4ee311",
		"0x55077021d5c0db0fb6df4df3a35d904d563cc0fabb1c6d0311d7e443e4ed9cf2", "0x6e00acd772cc515f1fbe52cdd7e9bca1f77c78599f15f283556cdaa92f402c45",
		"0x07ca4cdce07aa8479af3bacb782037630a6ab83fd93c229485617f4697d26eaa", "0x3b6e66ba7d0368224598f59943e952ce26d3ff4bea0418721b3936df6124977c",
		"0x6130c9bb22237ae127cd4ddffef428ce1dd057397ea0f013bf030b1f579b04d6", "0x298da2837ef362399e77724a6e39f12982db21cc57f57ece15883f5e57059d7e",
		"0x62f9c9a6360a1e3fc1ea1442cf43ced6468d36b336eeb4426d9051f79197b555", "0x1508b9838f499cd49903926056362dd655485fd1770b7e58e7d60d10eba0ee64",
		"0x6a334242561e07b80767a0832296ae0a5052e0a3062b0aa5912a6c77943c73b7", "0x013806239024734a81aca24e775ab5231a9157c4cb78bf7cff5482b12de82636",
		"0x02168b167d208335ef1f0343f0c2ee33d0aebcdcfd5da81aef83b687fe946054", "0x4082931bb870f44d3a49f2bc5926b82c3bf301559efa70c06adda21266735912",
		"0x6161d2c95b657ace2d5d3d673b482bdc5d9f7815b341be4df13996a4c2e0d14a", "0x42e1ca284d82d72b2149227c528af978d34caf249d7750c051536146b4535948",
		"0x480cd3089ce7712790cfbde234cfedde278d2bed150c9a5da12ee819adc48863", "0x697b10d194f107ff2a3fd683a7c62c1ce4cdd17d85e90a10a112f4ba045efc4e",
		"0x3fce7d51bc6ef6dce5cb652b8a8b3484be5aa35a5990c8b53b457bbb9426f06b", "0x33bf15dac9b86baaaaba3493b353ad0c890307adfceebb858fe24c90fc9c8631",
	},
	MDS: [][]string{
		{
			"0x458e97984c2b4b2b51ef819e6c2de803323e959b66656a65cccccccc33333334", "0x609b60c54d5893118005895c0806deaf1b1e08ad2aa94ca9d555555480000001",
			"0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925", "0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001",
			"0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab",
		},
		{
			"0x609b60c54d5893118005895c0806deaf1b1e08ad2aa94ca9d555555480000001", "0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925",
			"0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001", "0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab",
			"0x22c74bcc2615a595a8f7c0cf3616f401991f4acdb332b532e66666661999999a",
		},
		{
			"0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925", "0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001",
			"0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab", "0x22c74bcc2615a595a8f7c0cf3616f401991f4acdb332b532e66666661999999a",
			"0x6963af62e003892a5d1d50074e93217934daf23145cff68aba2e8ba200000001",
		},
		{
			"0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001", "0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab",
			"0x22c74bcc2615a595a8f7c0cf3616f401991f4acdb332b532e66666661999999a", "0x6963af62e003892a5d1d50074e93217934daf23145cff68aba2e8ba200000001",
			"0x6a44840c3b7b082cd99fb0b208d45b5a376dd6581553d4546aaaaaa9c0000001",
		},
		{
			"0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab", "0x22c74bcc2615a595a8f7c0cf3616f401991f4acdb332b532e66666661999999a",
			"0x6963af62e003892a5d1d50074e93217934daf23145cff68aba2e8ba200000001", "0x6a44840c3b7b082cd99fb0b208d45b5a376dd6581553d4546aaaaaa9c0000001",
			"0x6217dc5a0f85429f8dce7bb808267bb5bd02ed3d9d88753a3b13b13a3b13b13c",
		},
	},
}

var presetNeptune255x4 = Preset{
	Name:          "neptune-255-4",
	Modulus:       "0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001",
	SecurityLevel: 128,
	Alpha:         5,
	Width:         4,
	Rate:          3,
	FullRounds:    8,
	PartialRounds: 56,
	RoundConstants: []string{
		"0x435dbb70fe9639bb3d2e7e1948b167bbcc7c29bed7d24e2ae783b7258c3b9b79", "0x0307afe4a167ba0d1d93f60f15346bda015fa08615bc785bd204aee1741264d5",
		"0x5c0e30ebca2f181197c0f06e98379ea11ca0b657bf1dde1060041f9e959945d2", "0x181b9f96bd7efa33178ba5316e4441a392c2bb1e0d5437a8ff1613f5997cc4cf",
		"0x428c5fb2bb090a1139904e862c27c1de0beb6790719c72495e4b83053dcdc51e", "0x6966e075558905b9ce6122ae7c5bd2cdd5dc93f394ce03b64e2a6a6267b81206",
		"0x521a2ac09efda0859ac79dc6b7948ed9d184b70a93397757c7e1e78cb95e2ce6", "0x0e09bd2528ba0b94d6ed86121aa48abf769d47c65138c5993a573528d2f09837",
		"0x1360abae0b804b8f70007cc8953ee7697a650fba556e3f0bdacb8376f4ad5519", "0x0616b4bfdf7c135daf2dda0fc23649e67ecadd04666c0c20b25abcaf4325dea5",
		"0x30d52aeb1848a121c102f3cd4c26c3a8b33a012d9a5d5d370ec2469d6bb621be", "0x29179ed83ab1110b93767b25101a0ed78388651d7926f80d0bedaee66e4dfc37",
		"0x071e1b7a0d4251e03b897b26d64e19230a94d5579de0114e99172feacaa50f1c", "0x08c69e6eddea48915949a0c7aa08d1d01b5128f7eb998d97b870d9f51f1aecdc",
		"0x0ec55a6b06550b25d3df32a9c2e24ae00a89b1a19d65226986033c2bbad66e02", "0x38891749192cdac572a4eb14bdef515ebcfa720fd7170230bacfbb62862401cc",
		"0x210e13978dc5983b3efc3c3643b0df191cb26f2eb0085079578b1498f6c6f19a", "0x0e7df63365732c5484104c7db6676a77ce32e0a4a06f78a54d70e5fd655adbc0",
		"0x2378638e5e2c069daf8135babf89ce5f62d5fd5f374bc6a85d5d8e835df9a8c3", "0x429b476c33c844ffc774fdb4573a05fcf60f6c62f881b21dc2bedd7ce3d699d9",
		"0x0c1776202f964b1050a843ec1c09d0b2737a3562b0ac9a35d4d341a36fee7b5e", "0x214769f3449c3ec3a1d274c932b9b20b7d58606f1b39ec4d7c550f90f4980d7e",
		"0x2440ca310753171d1ecb3276fcb1abe78329665f1ee54031f62f02238467fe6e", "0x41d7fc31fb80088dd2e5050e9ca265bf0d3367272b97abe417e3889ec3edc8f6",
		"0x6acceda1e5b88a6d5e62c93a248225b3d019f22564f7b5dc2aacf619ae2f8647", "0x3bd0c24df838361cf463d5346262b4a83fbdeda25ead4bdf3a0ec683247546a2",
		"0x1c46861bb307c05ef9744ab2f3f1121944e4c45034ee6ac8f0272e755d4b6f6d", "0x0aff9e92f3b43678fe551bbd8f25c2613b03c0b8246079e180a6cd2cbb4c9c24",
		"0x65c86e5cf041918dd50f1459eae4988cdd99a4bf7d1babfd946ffa235de2e73c", "0x34456093491393fc5ae59ab7c7b6169c0b0939a52e085f495559c23a7c7e6c14",
		"0x39135f352442c5fa32c3400534c994e279913fabfcd9373bca18052fcef15803", "0x6354a55ec8726101d11a749214be3c6418b1816e577e08f1c1a2f435614896cb",
		"0x0d3b0448c50b68f7baceaccd94552a122b89b786ca620b863c02a7a5bfe774cd", "0x37de17de5d77d1aa293a04e1d2a9ccf8f5f475f1f6d00b2a9e279e20b6df70c3",
		"0x3f06cd79850df6108be46661a92292eee0981c98d05ec2f553b8e7a6cdd15a13", "0x1190dda4cbcc050860d69d9b0841f371e6ee0f1f3e318a193a3d254c8ea19930",
		"0x4d486da7382a041ff02f0d19ac57a8d10a46363a3ff70fe6166ecc52d073902d", "0x2b6542eaeb87fc42fcd92147064a91a0214004b6d838afd7346a2716b3ef92cf",
		"0x57511ad2e251bb9c3510331ef75a449de6ab76044785522e2c58118073734374", "0x3d8b02b647073d6bb96f2e9b27b0fb80748c9fda99003c8529460644a3999544",
		"0x4d01c4c679e545449955e318ee0d32c66969b9ef7351cbefcff2be6db93d6340", "0x0d148334ee5f03afe680a0bfbc479ebba90c149c251c38dc7214d192adc23d59",
		"0x51cb09abe4ca48849b8ed609a35530063d1e108bef461b57cb4ab256d23c8715", "0x6cb836cc464e1def59ee2eb012ece332dbe6e8d40fe5be20d467f1aac6463a64",
		"0x4aa865b463081e81767d3a0bb6d996b80b46e60d252d4acdc6a58b686981a4e1", "0x6d74e3ccfee94f471b8e2906f26117fa6ae0a5ecbeb8d5d6be7670950c7ad08e",
		"0x31de4d8889e45640c1ab6cb3c1e448a59251868082c8661e23ca2494fe20db41", "0x0cb45744245e16f06ceaa2fb2a7a867250aeb0b72c1362dbd59e8c42fc272403",
		"0x2022672836eb3a87b07d2b8e8d3d54e84ef074c3f3711f812ff4b917f724c9bd", "0x14a3a3c5e0772147a6099b58ddea285408e653738c665389206678f49cde7ed0",
		"0x64aaf5f888bb77306894f4197dd84f69ee9def0215594abdce5ea7981fd7b04a", "0x5966360244e5804391c0a967aa24682ed0d253169803f1de4d7a74610ad696fd",
		"0x72ab5d880b24076b9ab2bde88b7f6c33b0f7dbebacc7fbcb34b7a8257a7d96d7", "0x6710e136713dc87ff3f9cb210aa1db11394f00ce3b255a9c7c717edb53a62107",
		"0x0b4a708d71ca90ea133e0532a3328c3957ce53f2b9e3fc6d17271d47d9d35b67", "0x4c2375cffbedf2ecde0634f867383938a70cec4f409f728859244d9df7d15154",
		"0x604027adcb15669476ccba80d2d5c279f7284cadcfca2e5fea7a3dbf25a07ff9", "0x4b3f8fdba7c3c15a60e060fb40c89ac3774a5d05563fbabd283049c681dc3e88",
		"0x3e4ef282d1a982e9d194441da324ad190ebc272c35f87da4b493731d145ed9e3", "0x3ca36c11fab63fbde4d2b6acd740791e802ebe6888ff85be9be64a34afdb96e0",
		"0x59b6ac07a1c1e77c48969c3ff79699ce5c341a4dd7716bab3711caefd1e08983", "0x0585c41ab8870f47026fcb4920d5a1dfc46afd9193f71f2d6abe9e13f4a37c00",
		"0x3306f364dce1e440ad2351d33fbe5f15fbdf4d9ff17d27e8b21d14f00e95320a", "0x30a82fe3a10afe039f3e8c2e7546ff76a4a3d4541b58125dbdb0d2516fe8a6ec",
		"0x688ffb1af4d60ba856a3b19eb147ce65cd68ace786afda1bfc574c9b93250f6e", "0x1ce1b8d7866ead6b29cdce992ab8960686cf3a6bc7feb49c3d460abbcb069c0e",
		"0x2cbff76a00d623515166d5b581f0adc4f7f713eabfc757e853f667893c90a827", "0x63a260c6e46d75512b405b32c6ec7f8acdd64dd6d53eae4e2e395cdd9f5c520d",
		"0x42223d517e729c29cd0043929a48b7e3ad9251375c3a869ff7ac95aa98445a0b", "0x4db292dea742799cf5ec29f166d16703d01f66e48c0d2566dff402af4a680a32",
		"0x61740f9a82c6a4fa9abc516991f0e6b87f0d5a319bb8256026f184513919dffe", "0x66c2eaa8ca804300d86a3972bddb6a53817d1c36af548c7362f79da78aa6816b",
		"0x1519e66cc576cc14ce2956470e8cdb70420740ecabfa6181c7176a70e79af414", "0x6ebf120fa7c372ce9c7c17a07bdda63e9ea3b2eeb5f4a7bac8d908e7f1209103",
		"0x5395c9ae6af6ee4858f9344f430ee8208843fde1cf235f97b60bdc5a3e848995", "0x1fa295097c1d41e6fbd9f72fb0af9b5aa3d1a8196821b0305527bf62979b97b0",
		"0x42ddc7f384cf8f928cde8f88f4ee7d7b62b9163ac70aca740f2bf7e52e38228c", "0x54811c99d6c88a6277fa41dafe17b7a4f2b8ac8582fe266c751fdf7d2a88fd40",
		"0x3ccbabd0849789cc1c434dd0c7356a0ec71d03db3ab227aec51f2a5abbd8aacb", "0x40d6918f0d6d75cae13b6cc63e771b27ee189301d97a2a207019f1646dfbf810",
		"0x25a0fac67dce64b86695c1f9986dfd547f51b603f6d73b5c849c9548547e2b32", "0x2307d40b97903f0f59f5df01de9ac9a823edc818619d555ec3d9882bf5ad2fca",
		"0x398549f8aad34cb56e6f66bc76f30b7e0a0379292e0c9db49ef928719e83c4ae", "0x562b6d5e4cae80684baf14b45f5216ac45e8dd10ff8d99531a94332966a7d8d6",
		"0x0de2f7224c7db546a7aa0b7097c6d48846cbe5ab35adbdbc14a134581a399168", "0x6645f7389026a44284598c2ad679a73a487db8ce965577e57f51361acb684c1b",
		"0x47987c690cb45bd23189fe76ae6fe562ca7757ebbd5f861e97c6493f20e3058c", "0x6c158b77a9457918cf699d0759b2588e8c3e2083645e4acbc679ffe60b4ed081",
		"0x03a8f448b6dfdbab048b5f193acd1d89b3c0d8777449a7c9e82836d71fce09cb", "0x6f82e6cb42fa93680f1058179be9ff2463a16bc2af5cfe85bba7b6f78b057b6f",
		"0x6fdc6c0c05fba5fc05e81673a730002393e23f5d6ac931dcae63255550b941a2", "0x18fd1168c293c5075de568971d285277010e8cc19dc1bf17b2dae0a3a38a0bda",
		"0x61f681ade3a5eb4308a786c967a76ad142ea814f5fcd788cd326a18d861855ef", "0x46351a8e970814672c6c2a5b8a2c4bf93291d4a7086b321e5d774a214f6cee42",
		"0x2b48e2821ea22551541577ada2edc1066077c766c1c0a84abeed33b2862624c6", "0x03af5569027cd396d262908fbcaedc7aaebd9ce44995833b312607ad33cfc958",
		"0x6771e0cbfcd5854b869555fa79c9b46f0704f1ceddb2003538864ac645887231", "0x0c60fc4ac4bab581a11fea9b1b5e1e1e4692e78231faedc6719ada9a395e5c84",
		"0x0553b99c71556f4d8ed95945a96d6cc1bf70a0d2307f77d5e6ddcffe852278d5", "0x14b6aea2c0ba14365b3a0c56e937338bb8555c415400e287f8b7bbe67b59b971",
		"0x5b82bbc5b5c301000e0ce4a34777f6df59ab8540338a32d1eb50426c9bb95309", "0x35f07a3ebc8947fcc9a72c3838bdf80000c0caa346aff7d1fa45ddf3b5892df9",
		"0x158c739d41772ef413fb5b7b21fcf0e8bfb9fbf9a4318f99d5467d05ece81587", "0x2f7ebdafde0bbe158a265dee8b18a1a4a0151952d06d15f389b2e517292b96eb",
		"0x41da27c7cb76adb43dc3e4d1afc732aace59618f0e2eb0923372f66504ca3076", "0x0a80d961878f34b45b371a87b2ebb1f9b58f3fd2719e5376d802c238796b11e9",
		"0x6d3885078660fac763b5982bd1f401043b5ca158341d24aff76b84b1df818290", "0x12cec3917acb30cc1e15281aa7bf53d90419d216986623613fb10aca9be742f7",
		"0x58289c672e594998792c12773554138fe3292caace0bfbadf01cee48ab72240a", "0x31c1bcad4eef1a0d7a73bfc7291951c337860dd5730ffb7400bc9ec72a76de9e",
		"0x1a28349b10c85633174b26436ec2cbc372ed1afd4b29af83cc89cb94ef457891", "0x5d6e8ad13be5518ec892ed1520c066a64ae425bd392c77b8843b8e842512fbe0",
		"0x00a2a6963b53495afbd3d312c684c5babc0037651d8f180d35d66aef892b9d2b", "0x5572d3d64b5bc3a507568493f71cf86208611fc997e323d8e92bf909b07afe89",
		"0x2f4d74cea3c17f17d4778ce57e59bc217f8a5856d189079f0b60a681c0e325f3", "0x6689968d8d529724311b6fe789bde980cb92392a91182edc36c57b09f4405304",
		"0x4d51b3403c6ddcec7ac976e62754c65bc338d5ea651555a876285dfc24702141", "0x6349b82e8184a0f1da93e07a6901fc23cf25bed7d6bedf709249947ee7ed5a35",
		"0x18a791400b6eefa2b19c6f83e019f170aa6bd445fcf4915f915b621c1573ba44", "0x333d6751bc4ab5d168a2ae3c6ceb237e26ae948bfb205e8b060d383cdd674fe3",
		"0x374d51e4dee080abb1a2cc25a988ee15320ce11fad84e8eecfe3cf5bae13863f", "0x2b42981ce6690c373ff43ed24e5c784ff2e192d0911ccffdc8262dc532de4867",
		"0x04a8002ec5feb1b6bafb30fb78d65023254751977478d7af2c7fa0e87b83d926", "0x2f82302976ba29681c7cbcf49d0ad1e1609c1e727e2a40cf30260d3ce57dd6c3",
		"0x2bf08176879b9da45776d2fd57988de0f12f33ce757411f27dbaa181f9cd9a6b", "0x039851bff4e488eecb8e1f59168682fa47c2d057aaefec12315e2dfcf7df5ee0",
		"0x605a4bdeadac0722061fbb098c05f47ccdc26ebdb45bda575f0c9495d27f6de4", "0x609c5a5b62e3eb56edbe6dcf30f937502434ff935f5564c0a5d0f686b8c4583a",
		"0x4d041c087422144212ec8978bcccbf1b8f471799bb8fb5c527f7bf4902fdee49", "0x17e6b7fa91ce16fa1818c61b4871acbbed0e3dd902aae03afaedb7a14c65132f",
		"0x528644c51eee10eb8373d43a3980b12df839fa178de5791f4cc53fc7cfae9614", "0x60616ade433fdfe048b713947f8b8475954331d393be923e772ef97ba70ebe31",
		"0x668f41b34ea071e41aad40bc6b04e5102eb2a15500d515c0d6e7013677005d0b", "0x143b1f278815a0285a453ac96e232fd54dc965b7af415a474cbf204a6f4c2654",
		"0x493726bef63266b200039437e47ee655704f641c785c72de2a7f852653b2aa9f", "0x13dc1ab1544f728cccb110b5d8a3b47b3331e57cfa9882786adb86cc70e55e73",
		"0x6fdb4a1b633c3e8b52910d143bc78493505fc721a469ebae764aa9d5f2fbd2e3", "0x10c11599636ea832ab3aca48b1a46c1b9a97dd0d5df68cfe2e6ebb2a0d5c1b2d",
		"0x3d333054b81e7f1a488baaf2972d6b41cd228e7e2fc44bd0dcadde4c50520882", "0x416549b06324046bdc8ea26e337a0a6ddeb83bb76e85ed609f4ffcfee9556fdf",
		"0x4fc2c645eb8ef43ac68aaef6992cbb7ef2215af392f7cf0bb326efe04b029c3b", "0x3615cdc9e839c98533ce09ec9139c9fb703d65bee903667cdfbeaa374032becf",
		"0x3723d731de7ebc74575fbe5701cd94ba51dbdd04a37afdbfb917e8f75d52b9ef", "0x4a061269abad785b7d1e3910c2ce47baa807df2be6b8f5154a823c225ba575c8",
		"0x083a8a784a984f22564334b099cc5db6297ea2831f6c98b92222b48b221fa872", "0x618235c3469a8443bf0c02a5113d258ffa6397c348b5e96369a4ad47781e4f7f",
		"0x20a22918f833d921243c3d40791e5532bb96632e4c1e6fd65b4a6edb9d12d1a9", "0x15f31ec89c9f83b4681857307fc8b97a4ece66c5049e73000dcb3117c570648e",
		"0x1458e387ac0fea846f84590101b081bf90185387542d5cc0c097f440d51ec533", "0x3bd2626d79f9b1d5689ceadd8e91ff146972b91bf85006efefd2b01e497ac3bc",
		"0x1d6a3cb53bc3be5050418257b01d9d5d0b1022538d8d5426cf2ad130a84bda92", "0x408f60ba780bf6331f410c132919f21a91dffb689c2dfd1c8a1e74a202f41f49",
		"0x6ba975d7b853cc0321a7a236d8cf0dfdb056588ddeaf82f9b82778f6d0a78ede", "0x18a3b273d1e8715a336b3f412a928b81bff10be01094711965c6375a3fbc0730",
		"0x36fc46cd7f322b010550bc1036f1c7abec5aec8e1a5cf6ef77d7913b662a9704", "0x3418d0dfcab4f80176020091b5a8a8f98e8803122929e5cc9ff632fdb40d8b1a",
		"0x0d910826913820c68af0552f51222e023bef305453ffc848d52796855b43b5f1", "0x636f59eeb8428abed226c38296e39524fff76afb1525959108c0efaf049a47b8",
		"0x06d5f15e9c5bddcfd6f6f86b9a078f227bcf841a7d908786f5abcee128827233", "0x6e21dbe0b1ca7c453fc8629f3f0ad4e9d01aed47f6cc9d5ed8166c6b00367d22",
		"0x09d9434f8dc085dfc74a3d15f73d89a1bde46f2c79659015e87a86d4f61e451c", "0x4ffbf816fd76132cc64d02bf952c538b5fb3adc51a31421e718e8f8aaebb8b2f",
		"0x7061bca7b176fc8893957c8ad8bda36d884c4104895c815cd8e78f49f90e4630", "0x21ddfccc092128048874a0c53156c08f9504a21d94dfc3ebda4d13073363c89a",
		"0x25e8ae5cc161160ea672beebb4ab2746950cd878072e1264df907ae9eb8fbace", "0x121c45420abf8e5cdab3ec9632c1becb3c42fe32aea83fa5265855d4ce4b51ad",
		"0x14a00fbc9c1a0319a19fe7dab909e800433556a4d394d50810dd9e42f79cd019", "0x7261bcd2cab92a568d0f0f6d063161d3988579c3d37618775243eff31aa2e748",
		"0x108a5bb864bef87c1ebcc6dfbe909eb7a792e180fcaa4fb60ce02a48e3f0b03e", "0x34d973e68a2b1179db3fe9937c5454b3adf89e495219ea8df5faaeaa67d30415",
		"0x1cc5702ef8cb0d489d447d08f7b66d22deed85b2e9e891317717fb1a8e8ac826", "0x1276800cddffa60515a5e57cc2cddcc3419cf1eed8791474c2188ee27eef0a28",
		"0x26a5bb35746471b63ef933bca24a49d366a58ca54150f0e524592795e1f4f695", "0x25c0a52e174ddcc11b5a3713702824a0608baabe32b55d293b201a0a27c2964d",
		"0x2b8cda9580ce03aabcd2508cce9bdbdf5b48fa7563c89dbd2db16cba4575e3b0", "0x48f8b225f65fa4f33d31e10698af06c59e387647d421d2005437d3a2a250ca2d",
		"0x112f07705f98748cc06f8ffd03e31f467d969fd05884db149a21e48537b6b0ef", "0x1a4923cd0a20ff2e2c0c3b89fc6069408e6b594b73061b26d781035a1c3d0872",
		"0x083130d75669dc95c0ca482e1a10caaf51863cf55af33ac10520e63cc8fc27ad", "0x492227265ac1e9f4b7679ee9975ce8d0b1adb3f9bd0b009c0a740b1de8de057d",
		"0x56c011941817140f9d524e7bab7c6ba0141bb007ec3699f8b998ce206816fc78", "0x34033f30606670727f5aedfff6be8d2013f3694b614965ed91cac1d8081187ad",
		"0x01ee164f8a35c64a2c356cc7db807cd83778914344b3549941090bda2c4ba39b", "0x42bb3cf5995d0f35e0214d8c0de0f569ab41e9ef75e71d0674012892d68ac68c",
		"0x283963400a7600040fe3e0fef299baad9b753a3a95132383e941453fe608cf69", "0x5645c81a6c057a50c7f415d774883607953b3865578cd9ba28101724b1751d05",
		"0x380a6b4359b921620795b3da872d508b935b811cb6d02c805667ffcb28af4d24", "0x2bad04565d6cc61669143b6ece9a1a77093ddd963c55e3a3cc11c53844041ea6",
		"0x0cf4a15499ae28bad732654915dc1d5b67a511845737909b1cccf50680f5ba31", "0x17c34ab6a23a149f249d490c9e88afc957ede5efbc18eb787890f63327e628e1",
		"0x38383a5e3b0fbf5350d048c4f16997705e8b9aa0e64da87252a3b21979e11ac5", "0x44f69eb8e9f7e53ea84bfe91293ab3a65f1fe6ab8bf7494e026afac6ac2bf484",
		"0x69a6655b628cb6e9c6e3b3b94f1ea8a2641c17a561e4a37eccbde34972624e3c", "0x0e072d0b971d68d536b76352ed16c6dab0440eca585cab64a4e0ba1e08615410",
		"0x4733e876b3b3f74ba58cf56b64faf89a95f1e7052599606c84b0b50e476ba880", "0x6d802356b1b924cee10d0bf2f0b480b54306b994218dcb9225e5400eb81b65ef",
		"0x60865619d73e9c6425faae1db8f9f3a491401b32b578fed491191d4dfaf2f3ac", "0x0b04d062c0757ef7ba7f8e54af428969c013d257e1f3d41d0dbbd0bad7711723",
		"0x22ac7eecc33347bc1c2abd26c1a9b35853bce937c75c542932aa1e87141f3ce0", "0x3ae3a7684111702cbeb86ceb67667cb3abc3afa2c93f0d8d8f2805fdf42c7594",
		"0x3e6b658310803f709adf8954c9b3b02864b37a490a84597bf74d380c06d0287e", "0x0273dc3b92d063f1d67c3e4d61e7bf0dc505f84aafa1243e9ebd12120317abf1",
		"0x1475088d8c356e610e5f4763d203c62e5bb941bf73a1716c43af9f1d50509f96", "0x1386d879763a44d259f99582124ef6d7302d3da8fd135fc4d8304117bc067fe3",
		"0x1daa41aa1644ebb8216172bcd30fb28e4e13ae754bd5bb08245fd3e39434e687", "0x124218390fad40862326265e6de2a7651ec5c5a6d422e568952b8fbee667caff",
		"0x1504f873a252e20b48d74663014532b2eff87628ab2955c97d0c48892c90b9cf", "0x1110bb10c565de009979db75bbe47c466d4cf37b822113f2ce77453e0a87f621",
		"0x316437b96f9cc8c18cd320e919e0d024fa4a4c487f7d78a2ad03e35df9b24d49", "0x70b15b8c41cb5fe087542b0abb05767d41fe184e67b489f4f0483265c45ae8d6",
		"0x24699333c2f08060595bea2f67d5c69e016d4dcd6399e9d1dbb6e69de7bc82d8", "0x5f6868c658998b59347d630ff37f438b8ac1cee1156c87a34972c6632d770f22",
		"0x328922bcbaa152406015cae1a2a1ca9b15519c6cd36588d5f51856182fd5a232", "0x5f1e4cff7c62b3a5bc89ba6fc70e7d20e61502f0b57ee51442b4d40da806b1e0",
		"0x59b1e88b79a00ed114839aebfd02b95dc11c61e02d871ff73c0ea986b95b409b", "0x4544ccfe8fb21d6a49db579aaa2d23939b6afd73bc8bfaccb9f8e13052638f9a",
		"0x47a0138447359ad695a898bb9f8f3d7770e74d3d1a382ae786af997d281c20d1", "0x3e385dcf88eca0c3c48bb0efb87d79b7f8da55e4c511f178af6b2d1fac2e12a3",
		"0x183b5d3b2d59067eab3a4422c7377c8e3f2e752eb9b22c97a8b7389e4fd01113", "0x37562ce51991499f8ad4cfe18ccd472052bda02c9ee4dbdfe3463dae34445d75",
		"0x421b21857527aa12f79a0d1e1712b31ee3c12f4f82c2e87954cee5bad9899d00", "0x34446ddd54ad408830dac6f68080e4b7d3999eb1cf32484e47cb58dcb4efca49",
		"0x052f2e208640f3d96cce87b89d5a1f1e100340ee6b59740b613c736e1dbbb7f5", "0x3d4fe52bc2ea3d112fbdabd937c13094cfb2d2914fbb21f6b417c5e08db84af7",
		"0x23957ffc11794cafe82485702c3e550f9c4254ea1c170acb5f297ada1d6160dd", "0x074918240e1ea0c22f1cb2ab87f019c60c93f97b3bac35766ad9675a9b698880",
		"0x72a6cb8d1ab3e1c262e67b7383af5989833135965ef0939d3ef5b9a772cb2075", "0x006ed13064351b11a6edb5fad36c09dd2c8ca35a81bed8429699813f0f52c676",
		"0x14b9a2ca056d4af215d7c4e767a773934bb878263244cdf2fe3d91a923037824", "0x17b7b4546ab94959ae33fef218a61010cee1bef29fefc4bec925b29004c931e8",
		"0x127647ad48ff4c00766303f7f11ab9e50d3e454a12fdf6e1f0a65d3ffcfed25d", "0x156e8df1f40957f9cddb9109a36990e6435f8f3192475a0421a24b50831169ee",
		"0x14a93d5ec7b96474fcbb753a9705225989e7222185d3ba3ea98425288f61f947", "0x342428fa567003be2117f74f6e2b64f92d1852b3a19785c85a9dcdc6414739a3",
		"0x69728785a386d98f1415897eef703c1fd12ea0ebbb08d1a4b86ca4a876970e05", "0x4205dbfd44798d218413a9ad69d1bba8c2171fe686f8d5e5161ef70e470a2dc8",
		"0x110e7c6c09c770034a4a3159af1552b93b6a5dcca36d4fe17c4d1ad25ef98a60", "0x2995c20c83bb958c655d9d7331ce04fdefbe3795bb41af31346836db93857aa5",
		"0x2f638c37f8c9b2fd506acc1a6716cbc2e035e6e3c6b7a18bd656bfab5f44bb7a", "0x09163acefb6a19112feb57a0d5dfa40ec9be98bc7393fa651447c2a08b2e92b9",
		"0x000a14e2951283469d27d64ff53de85bfec39491c9cc17d7867d34f4ac2c7ed1", "0x17cfd1f18d6a19c63f3eba4742556382118ab17655e3dc2a2db314448afb563d",
		"0x4329d7e65590b914a826cd44e44e9bf40bcb7795dbc9967cdf22f7c235e54944", "0x27ae8b032c813b4068cf9ed7a33e4412c2c2a542c0b852c223488e1835e090f2",
		"0x071d2902bb26a43c8a22c8e1b0e2c90c0b9e6855ebac5d2759842fea1576d85a", "0x5f85259bbd72609259df9d1eab84634decdd42bca99a7915b1ce0d2d13bc72fe",
		"0x2694ef88035366770006ac71a69237683c9338cc3170d8ba53af6abcffc0e029", "0x5b9711d919c871e2856571ed2de34f76bcebf1f6338b3149465f1b266fd36c9d",
		"0x16880111cfebe378ce8f8a9f7ed97a8579533bac735afc9e40c06f5495409075", "0x4d836438f0db187658eed75bae31ce7d978a1932aa894665235fee6e49b77abe",
		"0x2c03d6f3484ca56c256ba91a1d71a4210d840f07749196ff752c491c79e427f8", "0x350594d4c210d6e66ef4fcbda72c80cd55b3dee5e91250a63d4cad3b14b77478",
		"0x5d50f9c8ff9b251d03b712c6f8d60f6137d192e69be0a92380a64d310a084e02", "0x1375498a707afe69452fc093e90d23a54563582fa18813f02bfe996d35569f02",
		"0x23e23d46ea3bc5cfb9aff1642e998710880b414a2048193b5dc642001a9fe1aa", "0x09dbae187a8543426c478b15560ca1838400236b1bf598dbdb1878b35eefe09e",
	},
	MDS: [][]string{
		{
			"0x56f23d7e5f361df6266b620607396203fece3b023ffec4ff3fffffff40000001", "0x458e97984c2b4b2b51ef819e6c2de803323e959b66656a65cccccccc33333334",
			"0x609b60c54d5893118005895c0806deaf1b1e08ad2aa94ca9d555555480000001", "0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925",
		},
		{
			"0x458e97984c2b4b2b51ef819e6c2de803323e959b66656a65cccccccc33333334", "0x609b60c54d5893118005895c0806deaf1b1e08ad2aa94ca9d555555480000001",
			"0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925", "0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001",
		},
		{
			"0x609b60c54d5893118005895c0806deaf1b1e08ad2aa94ca9d555555480000001", "0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925",
			"0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001", "0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab",
		},
		{
			"0x211f5460e751918257c7624b7077624aaa362edc49241a48db6db6db24924925", "0x656ff268c469cd9f2cd29d07086d9d04a945ef829ffe907f1fffffff20000001",
			"0x19c308bd25b13848eef068e557794c72f62a247271c6bf1c38e38e38aaaaaaab", "0x22c74bcc2615a595a8f7c0cf3616f401991f4acdb332b532e66666661999999a",
		},
	},
}

