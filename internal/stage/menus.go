package stage

func defaultPools() map[ID]MealPool {
	return map[ID]MealPool{
		Early: {
			Breakfast: []string{
				"쌀미음",
				"찹쌀미음",
				"오트밀미음",
				"감자미음",
				"고구마미음",
				"애호박미음",
				"브로콜리미음",
				"당근미음",
				"단호박미음",
				"시금치미음",
				"배미음",
				"바나나미음",
				"소고기미음",
				"양파미음",
			},
			Lunch: []string{
				"쌀미음",
				"찹쌀미음",
				"감자미음",
				"고구마미음",
				"애호박미음",
				"양배추미음",
				"청경채미음",
				"당근미음",
				"무미음",
				"단호박미음",
				"콜리플라워미음",
				"배미음",
				"완두콩미음",
				"소고기미음",
			},
		},
		Mid: {
			Breakfast: []string{
				"소고기당근죽",
				"닭고기감자죽",
				"소고기애호박죽",
				"소고기브로콜리죽",
				"닭고기양배추죽",
				"소고기시금치죽",
				"닭고기고구마죽",
				"소고기단호박죽",
				"닭고기무죽",
				"소고기오트밀야채죽",
				"연어감자죽",
				"소고기두부죽",
				"닭고기시금치죽",
				"소고기옥수수죽",
			},
			Lunch: []string{
				"소고기배추죽",
				"소고기무죽",
				"닭고기단호박죽",
				"소고기청경채죽",
				"닭고기비타민죽",
				"소고기양파죽",
				"소고기완두콩죽",
				"닭고기브로콜리죽",
				"소고기감자죽",
				"대구살당근죽",
				"닭고기당근죽",
				"소고기미역죽",
				"소고기고구마죽",
				"닭고기애호박죽",
			},
		},
		Late: {
			Breakfast: []string{
				"소고기야채된죽",
				"닭고기감자무른밥",
				"소고기당근무른밥",
				"연어브로콜리죽",
				"소고기시금치무른밥",
				"닭고기단호박된죽",
				"소고기애호박무른밥",
				"닭고기브로콜리무른밥",
				"대구살감자된죽",
				"소고기양배추된죽",
				"연어야채무른밥",
				"닭고기시금치무른밥",
				"소고기오트밀야채된죽",
				"소고기무된죽",
			},
			Lunch: []string{
				"소고기배추무른밥",
				"닭고기양배추무른밥",
				"대구살야채죽",
				"소고기두부무른밥",
				"닭고기완두콩무른밥",
				"소고기고구마무른밥",
				"연어감자무른밥",
				"닭고기두부무른밥",
				"소고기무무른밥",
				"대구살브로콜리무른밥",
				"소고기양파무른밥",
				"닭고기고구마된죽",
				"소고기단호박무른밥",
				"연어당근무른밥",
			},
			Dinner: []string{
				"소고기무른밥 + 배추국",
				"닭고기무른밥 + 미역국",
				"소고기야채무른밥",
				"두부야채무른밥",
				"소고기감자무른밥",
				"닭고기당근무른밥",
				"소고기단호박무른밥",
				"닭고기야채무른밥 + 국",
				"소고기배추무른밥 + 미역국",
				"대구살무른밥 + 배추국",
				"소고기브로콜리무른밥 + 국",
				"닭고기감자무른밥 + 미역국",
				"두부당근무른밥 + 국",
				"소고기양파무른밥 + 국",
			},
			Snack: []string{
				"바나나",
				"찐고구마",
				"사과퓨레",
				"배퓨레",
				"찐감자",
				"떡뻥",
				"아기과자",
				"단호박찜",
				"당근스틱",
				"찐브로콜리",
				"아보카도",
				"감자볼",
				"고구마볼",
				"과일요거트",
			},
		},
		Completion: {
			Breakfast: []string{
				"소고기야채진밥",
				"닭고기볶음밥",
				"소고기당근밥 + 미역국",
				"계란야채죽",
				"소고기시금치밥",
				"닭고기감자밥",
				"소고기브로콜리밥",
				"소고기고구마밥",
				"연어볶음밥",
				"소고기두부밥",
				"계란볶음밥",
				"닭고기단호박밥",
				"소고기감자밥 + 배추국",
				"닭고기시금치밥",
			},
			Lunch: []string{
				"소고기완자 + 진밥",
				"닭고기야채볶음밥",
				"소고기배추국 + 밥",
				"두부조림 + 진밥",
				"소고기미역국 + 밥",
				"닭고기무국 + 밥",
				"연어야채밥",
				"닭고기감자조림 + 밥",
				"소고기된장국 + 밥",
				"연어감자밥 + 국",
				"대구야채밥",
				"소고기두부조림 + 밥",
				"닭고기단호박밥 + 국",
				"소고기고구마조림 + 밥",
			},
			Dinner: []string{
				"소고기무국 + 진밥",
				"닭볶음탕 + 밥",
				"소고기감자조림 + 밥",
				"두부된장국 + 밥",
				"소고기야채국 + 밥",
				"닭고기미역국 + 밥",
				"소고기시금치국 + 밥",
				"닭고기야채국 + 밥",
				"소고기애호박국 + 밥",
				"연어진밥 + 미역국",
				"두부완자 + 밥",
				"소고기고구마국 + 밥",
				"닭고기된장국 + 밥",
				"소고기당근조림 + 밥",
			},
			Snack: []string{
				"고구마스틱",
				"바나나",
				"떡",
				"사과",
				"아기요거트",
				"찐옥수수",
				"치즈",
				"감자스틱",
				"단호박스틱",
				"딸기요거트",
				"두부볼",
				"야채스틱",
				"바나나팬케이크",
				"고구마치즈볼",
			},
		},
		Toddler:        toddlerPool,
		GeneralToddler: toddlerPool,
	}
}

// The two toddler stages share one menu.
var toddlerPool = MealPool{
	Breakfast: []string{
		"계란말이 + 밥 + 된장국",
		"소고기볶음밥 + 미역국",
		"주먹밥 + 소고기무국",
		"야채죽 + 계란찜",
		"채소볶음밥 + 달걀국",
		"잔치국수",
		"소고기비빔밥",
		"김치볶음밥 + 계란후라이",
		"감자전 + 밥 + 국",
		"소고기덮밥",
		"치즈밥 + 미역국",
		"계란덮밥 + 된장국",
		"닭고기죽",
		"소고기김밥",
	},
	Lunch: []string{
		"소고기야채카레 + 밥",
		"닭고기덮밥 + 배추국",
		"소고기미역국 + 밥 + 계란말이",
		"어묵국 + 밥 + 멸치볶음",
		"돼지고기감자국 + 밥",
		"소고기된장찌개 + 밥",
		"볶음우동 + 달걀국",
		"닭고기카레 + 밥",
		"소고기국수",
		"제육볶음 + 밥 + 국",
		"생선까스 + 밥 + 국",
		"소고기잡채밥",
		"미트볼파스타",
		"소고기우동",
	},
	Dinner: []string{
		"생선구이 + 밥 + 시금치나물",
		"소고기장조림 + 밥 + 된장국",
		"닭고기야채볶음 + 밥 + 국",
		"두부조림 + 밥 + 미역국",
		"소고기떡국",
		"돼지고기간장불고기 + 밥 + 콩나물국",
		"갈치구이 + 밥 + 무국",
		"닭고기장조림 + 밥 + 국",
		"소고기야채볶음 + 밥 + 국",
		"돼지고기김치찌개 + 밥",
		"생선조림 + 밥 + 국",
		"소고기감자조림 + 밥 + 된장국",
		"닭고기카레 + 밥 + 샐러드",
		"제육볶음 + 밥 + 된장국",
	},
	Snack: []string{
		"과일 (사과, 배, 귤)",
		"고구마 + 우유",
		"요거트 + 시리얼",
		"바나나 + 치즈",
		"떡 + 우유",
		"찐옥수수",
		"과일주스 + 쿠키",
		"감자전",
		"호떡",
		"미니김밥",
		"과일샐러드",
		"두유 + 과자",
		"치즈스틱",
		"고구마맛탕",
	},
}
